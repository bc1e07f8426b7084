// Package prose is the model-backed annotator, built on the prose NLP
// library. It supplies POS tags, named-entity spans and noun phrases;
// when its model data cannot be loaded the factory degrades to the
// basic annotator instead.
package prose

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	prosev2 "github.com/jdkato/prose/v2"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Ensure Annotator implements the interface.
var _ driven.Annotator = (*Annotator)(nil)

// stopWords is a compact English stop-word list. The prose tagger does
// not flag stop words itself.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true,
	"and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
	"is": true, "are": true, "was": true, "be": true,
	"it": true, "this": true, "that": true,
	"i": true, "you": true, "he": true, "she": true, "we": true, "they": true,
	"my": true, "your": true, "me": true,
	"do": true, "does": true, "did": true,
	"as": true, "from": true, "into": true,
}

// Annotator wraps the prose document pipeline.
type Annotator struct{}

// New creates a prose-backed annotator. It runs a probe annotation so
// a broken model surfaces at startup, where the caller can degrade,
// rather than on the first user query.
func New() (*Annotator, error) {
	if _, err := prosev2.NewDocument("prime"); err != nil {
		return nil, fmt.Errorf("%w: loading prose model: %v", domain.ErrAnnotatorUnavailable, err)
	}
	return &Annotator{}, nil
}

// Name identifies the implementation.
func (a *Annotator) Name() string {
	return "prose"
}

// Annotate runs tokenization, tagging and entity extraction over the
// text and maps the result onto the shared document shape.
func (a *Annotator) Annotate(_ context.Context, text string) (*domain.AnnotatedDocument, error) {
	parsed, err := prosev2.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("annotating text: %w", err)
	}

	proseTokens := parsed.Tokens()
	tokens := make([]domain.Token, 0, len(proseTokens))
	for _, t := range proseTokens {
		lower := strings.ToLower(t.Text)
		tokens = append(tokens, domain.Token{
			Text:    t.Text,
			Lemma:   lower,
			POS:     coarsePOS(t.Tag),
			IsStop:  stopWords[lower],
			IsPunct: isPunct(t.Text),
			IsAlpha: isAlpha(t.Text),
		})
	}

	entities := make([]domain.EntitySpan, 0, 2)
	for _, ent := range parsed.Entities() {
		start, end := spanOffsets(text, ent.Text)
		entities = append(entities, domain.EntitySpan{
			Text:  ent.Text,
			Label: ent.Label,
			Start: start,
			End:   end,
		})
	}

	return &domain.AnnotatedDocument{
		Text:        text,
		Tokens:      tokens,
		Entities:    entities,
		NounPhrases: nounPhrases(tokens),
		HasVector:   true,
	}, nil
}

// coarsePOS maps Penn Treebank tags to the coarse classes the pipeline
// uses.
func coarsePOS(tag string) string {
	switch {
	case tag == "NNP" || tag == "NNPS":
		return domain.POSProperNoun
	case strings.HasPrefix(tag, "NN"):
		return domain.POSNoun
	case strings.HasPrefix(tag, "VB") || tag == "MD":
		return domain.POSVerb
	case strings.HasPrefix(tag, "JJ"):
		return domain.POSAdjective
	case strings.HasPrefix(tag, "RB"):
		return domain.POSAdverb
	case strings.HasPrefix(tag, "PRP") || tag == "WP":
		return domain.POSPronoun
	default:
		return domain.POSOther
	}
}

// nounPhrases derives noun chunks from contiguous nominal runs
// (adjectives followed by nouns). The head is the final token of the
// run.
func nounPhrases(tokens []domain.Token) []domain.NounPhrase {
	var phrases []domain.NounPhrase
	var run []domain.Token

	flush := func() {
		if len(run) == 0 {
			return
		}
		head := run[len(run)-1]
		if head.POS == domain.POSNoun || head.POS == domain.POSProperNoun {
			words := make([]string, len(run))
			for i, t := range run {
				words[i] = t.Text
			}
			phrases = append(phrases, domain.NounPhrase{
				Text:    strings.Join(words, " "),
				HeadPOS: head.POS,
			})
		}
		run = nil
	}

	for _, t := range tokens {
		switch t.POS {
		case domain.POSAdjective, domain.POSNoun, domain.POSProperNoun:
			if !t.IsStop {
				run = append(run, t)
				continue
			}
			flush()
		default:
			flush()
		}
	}
	flush()

	return phrases
}

// spanOffsets locates an entity mention in the text as rune offsets.
// Unlocatable mentions report (0, 0); extraction only reads Text.
func spanOffsets(text, mention string) (start, end int) {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(mention))
	if idx < 0 {
		return 0, 0
	}
	start = len([]rune(text[:idx]))
	return start, start + len([]rune(mention))
}

func isPunct(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func isAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
