package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockAnnotator implements driven.Annotator with a small fixed lexicon,
// standing in for the model-backed annotator: verbs are tagged, stop
// words marked, canned entity spans attached, and documents report a
// vector. It is deterministic and needs no model download.
type mockAnnotator struct {
	hasVector bool
	entities  map[string][]domain.EntitySpan
	err       error
}

var mockVerbs = map[string]bool{
	"open": true, "launch": true, "start": true, "run": true,
	"play": true, "call": true, "send": true, "text": true,
	"remind": true, "set": true, "tell": true,
}

var mockStops = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"of": true, "me": true, "is": true, "are": true, "you": true,
	"how": true, "what": true, "it": true, "my": true,
}

func (m *mockAnnotator) Annotate(_ context.Context, text string) (*domain.AnnotatedDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	doc := &domain.AnnotatedDocument{
		Text:      text,
		Entities:  m.entities[text],
		HasVector: m.hasVector,
	}
	for _, field := range strings.Fields(text) {
		pos := domain.POSNoun
		if mockVerbs[field] {
			pos = domain.POSVerb
		}
		doc.Tokens = append(doc.Tokens, domain.Token{
			Text:    field,
			Lemma:   strings.ToLower(field),
			POS:     pos,
			IsStop:  mockStops[field],
			IsAlpha: isAlphaField(field),
		})
	}
	return doc, nil
}

func (m *mockAnnotator) Name() string { return "mock" }

func isAlphaField(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}

func newTestProcessor(ann *mockAnnotator, opts ...ProcessorOption) *Processor {
	return NewProcessor(ann, DefaultCatalog(), opts...)
}

// --- Tests ---

func TestProcess_OpenApp(t *testing.T) {
	p := newTestProcessor(&mockAnnotator{hasVector: true})

	result, err := p.Process(context.Background(), "Open Chrome")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentOpenApp, result.Intent)
	assert.GreaterOrEqual(t, result.Confidence, 0.4)
	assert.Equal(t, "chrome", result.Entities["app_name"])
	assert.Equal(t, "Open Chrome", result.OriginalQuery)
	assert.Equal(t, []string{"open chrome"}, result.Context)
}

func TestProcess_PlayYouTube(t *testing.T) {
	p := newTestProcessor(&mockAnnotator{hasVector: true})

	result, err := p.Process(context.Background(), "play despacito on youtube")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentPlayYouTube, result.Intent)
	assert.Equal(t, "despacito", result.Entities["search_term"])
}

func TestProcess_WeatherLocationDependsOnEntities(t *testing.T) {
	// With entity spans the location slot fills; without them the same
	// query still selects the intent but degrades the slot to empty.
	withEntities := newTestProcessor(&mockAnnotator{
		hasVector: true,
		entities: map[string][]domain.EntitySpan{
			"weather in new york": {
				{Text: "new york", Label: domain.EntityLabelGPE, Start: 11, End: 19},
			},
		},
	})
	result, err := withEntities.Process(context.Background(), "weather in new york")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentGetWeather, result.Intent)
	assert.Equal(t, "new york", result.Entities["location"])

	withoutEntities := newTestProcessor(&mockAnnotator{})
	result, err = withoutEntities.Process(context.Background(), "weather in new york")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentGetWeather, result.Intent)
	assert.Equal(t, "", result.Entities["location"])
}

func TestProcess_GeneralChatNeedsSemanticSignal(t *testing.T) {
	// The chat threshold sits above what a lone pattern match reaches, so
	// small-talk selection requires the semantic bonus.
	full := newTestProcessor(&mockAnnotator{hasVector: true})
	result, err := full.Process(context.Background(), "how are you")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentGeneralChat, result.Intent)
	assert.GreaterOrEqual(t, result.Confidence, 0.6)

	degraded := newTestProcessor(&mockAnnotator{})
	result, err = degraded.Process(context.Background(), "how are you")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentUnknown, result.Intent)
}

func TestProcess_SetReminder(t *testing.T) {
	p := newTestProcessor(&mockAnnotator{hasVector: true})

	result, err := p.Process(context.Background(), "remind me to buy milk at 5pm")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentSetReminder, result.Intent)
	assert.Equal(t, "buy", result.Entities["task"])
	assert.Equal(t, "milk at 5pm", result.Entities["time"])
}

func TestProcess_UnmatchedQuery(t *testing.T) {
	p := newTestProcessor(&mockAnnotator{})

	result, err := p.Process(context.Background(), "xyzzy plugh")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentUnknown, result.Intent)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.Entities)
	// Even unmatched queries enter the context buffer.
	assert.Equal(t, []string{"xyzzy plugh"}, result.Context)
}

func TestProcess_EmptyQuery(t *testing.T) {
	p := newTestProcessor(&mockAnnotator{hasVector: true})

	_, err := p.Process(context.Background(), "open chrome")
	require.NoError(t, err)

	for _, query := range []string{"", "   ", "\t\n"} {
		result, err := p.Process(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, domain.IntentUnknown, result.Intent)
		assert.Equal(t, 0.0, result.Confidence)
		assert.Empty(t, result.Entities)
		assert.Equal(t, query, result.OriginalQuery)
	}

	// Blank input never touches the history.
	assert.Equal(t, []string{"open chrome"}, p.Context())
}

func TestProcess_ContextWindowEviction(t *testing.T) {
	p := newTestProcessor(&mockAnnotator{hasVector: true}, WithContextWindow(2))

	for _, q := range []string{"open chrome", "how are you", "call mom"} {
		_, err := p.Process(context.Background(), q)
		require.NoError(t, err)
	}

	// Oldest entry evicted, order preserved, entries lowercased.
	assert.Equal(t, []string{"how are you", "call mom"}, p.Context())
}

func TestProcess_ClearContext(t *testing.T) {
	p := newTestProcessor(&mockAnnotator{hasVector: true})

	_, err := p.Process(context.Background(), "open chrome")
	require.NoError(t, err)
	require.NotEmpty(t, p.Context())

	p.ClearContext()
	assert.Empty(t, p.Context())
}

func TestProcess_AnnotatorError(t *testing.T) {
	broken := errors.New("model not loaded")
	p := newTestProcessor(&mockAnnotator{err: broken})

	_, err := p.Process(context.Background(), "open chrome")
	require.Error(t, err)
	assert.ErrorIs(t, err, broken)
}

func TestProcess_NilAnnotator(t *testing.T) {
	p := NewProcessor(nil, DefaultCatalog())

	_, err := p.Process(context.Background(), "open chrome")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAnnotatorUnavailable)
	// A misconfigured pipeline must not pollute the history.
	assert.Empty(t, p.Context())
}

func TestProcess_Deterministic(t *testing.T) {
	p := newTestProcessor(&mockAnnotator{hasVector: true})

	first, err := p.Process(context.Background(), "open chrome")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := p.Process(context.Background(), "open chrome")
		require.NoError(t, err)
		assert.Equal(t, first.Intent, again.Intent)
		assert.Equal(t, first.Confidence, again.Confidence)
		assert.Equal(t, first.Entities, again.Entities)
	}
}
