package domain

// Part-of-speech classes the pipeline cares about. Annotators map their
// native tagsets down to these coarse classes.
const (
	POSNoun       = "NOUN"
	POSProperNoun = "PROPN"
	POSVerb       = "VERB"
	POSAdjective  = "ADJ"
	POSAdverb     = "ADV"
	POSPronoun    = "PRON"
	POSOther      = "X"
)

// Entity span labels used by extraction rules.
const (
	EntityLabelPerson   = "PERSON"
	EntityLabelGPE      = "GPE"
	EntityLabelLocation = "LOC"
)

// Token is a single annotated token of an input query.
type Token struct {
	// Text is the surface form as it appeared in the input.
	Text string

	// Lemma is the lowercased base form.
	Lemma string

	// POS is the coarse part-of-speech class.
	POS string

	// IsStop marks closed-class words excluded from keyword scoring.
	IsStop bool

	// IsPunct marks punctuation tokens.
	IsPunct bool

	// IsAlpha marks tokens made entirely of letters.
	IsAlpha bool
}

// EntitySpan is a named-entity mention within the input.
type EntitySpan struct {
	// Text is the mention surface text.
	Text string

	// Label is the entity class (PERSON, GPE, LOC, ...).
	Label string

	// Start and End are rune offsets into the document text.
	Start int
	End   int
}

// NounPhrase is a noun-chunk span with its syntactic head.
type NounPhrase struct {
	// Text is the full phrase.
	Text string

	// HeadPOS is the part-of-speech class of the head token.
	HeadPOS string
}

// AnnotatedDocument is the normalised, tokenised representation of a
// query. Both the model-backed and the basic annotator produce this same
// shape; downstream code never branches on which one built it. The basic
// annotator leaves Entities and NounPhrases empty and HasVector false.
type AnnotatedDocument struct {
	// Text is the raw (lowercased) text the document was built from.
	Text string

	// Tokens in input order.
	Tokens []Token

	// Entities are named-entity spans, when the annotator provides them.
	Entities []EntitySpan

	// NounPhrases are noun chunks, when the annotator provides them.
	NounPhrases []NounPhrase

	// HasVector reports whether a semantic vector backs this document.
	HasVector bool
}

// Keywords returns the lowercased lemmas of all non-stopword,
// non-punctuation, alphabetic tokens. This is the keyword set the
// scorer intersects with each intent's keyword list.
func (d *AnnotatedDocument) Keywords() []string {
	keywords := make([]string, 0, len(d.Tokens))
	for _, t := range d.Tokens {
		if !t.IsStop && !t.IsPunct && t.IsAlpha {
			keywords = append(keywords, t.Lemma)
		}
	}
	return keywords
}
