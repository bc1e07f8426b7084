// Package basic is the fallback annotator: whitespace tokenization, a
// small closed stop-word set, and a generic noun POS for every token.
// It produces the same document shape as the model-backed annotator so
// the pipeline never has to know which one it got.
package basic

import (
	"context"
	"strings"
	"unicode"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Ensure Annotator implements the interface.
var _ driven.Annotator = (*Annotator)(nil)

// stopWords is the fixed closed set: articles, conjunctions and common
// prepositions.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true,
	"and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

// punctuation is the fixed punctuation set.
var punctuation = map[string]bool{
	".": true, ",": true, "!": true, "?": true, ";": true, ":": true,
}

// Annotator is the degraded-mode tokenizer.
type Annotator struct{}

// New creates a basic annotator. It has no external resources and
// cannot fail.
func New() *Annotator {
	return &Annotator{}
}

// Name identifies the implementation.
func (a *Annotator) Name() string {
	return "basic"
}

// Annotate splits on whitespace. Lemma is the lowercased surface form
// and every token is tagged as a generic noun. No entity spans, no noun
// phrases, no semantic vector.
func (a *Annotator) Annotate(_ context.Context, text string) (*domain.AnnotatedDocument, error) {
	words := strings.Fields(text)
	tokens := make([]domain.Token, 0, len(words))

	for _, w := range words {
		lower := strings.ToLower(w)
		tokens = append(tokens, domain.Token{
			Text:    w,
			Lemma:   lower,
			POS:     domain.POSNoun,
			IsStop:  stopWords[lower],
			IsPunct: punctuation[w],
			IsAlpha: isAlpha(w),
		})
	}

	return &domain.AnnotatedDocument{
		Text:      text,
		Tokens:    tokens,
		HasVector: false,
	}, nil
}

// isAlpha reports whether the word consists entirely of letters.
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
