package basic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

func TestAnnotate_TokenShape(t *testing.T) {
	doc, err := New().Annotate(context.Background(), "open the Chrome browser")
	require.NoError(t, err)

	require.Len(t, doc.Tokens, 4)
	assert.Equal(t, "open the Chrome browser", doc.Text)

	// Lemma is the lowercased surface form, POS is always a generic noun.
	chrome := doc.Tokens[2]
	assert.Equal(t, "Chrome", chrome.Text)
	assert.Equal(t, "chrome", chrome.Lemma)
	assert.Equal(t, domain.POSNoun, chrome.POS)
	assert.False(t, chrome.IsStop)
	assert.True(t, chrome.IsAlpha)

	the := doc.Tokens[1]
	assert.True(t, the.IsStop)
}

func TestAnnotate_PunctuationAndAlpha(t *testing.T) {
	doc, err := New().Annotate(context.Background(), "hello , world !")
	require.NoError(t, err)

	require.Len(t, doc.Tokens, 4)
	assert.True(t, doc.Tokens[1].IsPunct)
	assert.True(t, doc.Tokens[3].IsPunct)
	assert.False(t, doc.Tokens[1].IsAlpha)
	assert.True(t, doc.Tokens[0].IsAlpha)
}

func TestAnnotate_DegradedCapabilities(t *testing.T) {
	doc, err := New().Annotate(context.Background(), "weather in new york")
	require.NoError(t, err)

	// Fallback mode never produces spans or vectors.
	assert.Empty(t, doc.Entities)
	assert.Empty(t, doc.NounPhrases)
	assert.False(t, doc.HasVector)
}

func TestAnnotate_EmptyText(t *testing.T) {
	doc, err := New().Annotate(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, doc.Tokens)
}

func TestAnnotate_StopWordSet(t *testing.T) {
	doc, err := New().Annotate(context.Background(), "the a an and or but in on at to for of with by")
	require.NoError(t, err)

	for _, tok := range doc.Tokens {
		assert.True(t, tok.IsStop, "expected %q to be a stop word", tok.Text)
	}
}
