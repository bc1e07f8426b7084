package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
	"github.com/prime-labs/prime-cli/internal/core/ports/driving"
	"github.com/prime-labs/prime-cli/internal/logger"
)

// Ensure Processor implements the interface.
var _ driving.QueryProcessor = (*Processor)(nil)

// Processor is the composition root of the NLP core. Per query it
// normalises, annotates, scores intents, extracts entities and updates
// the context buffer. It performs no I/O and is deterministic given its
// catalog and context state. The context buffer makes an instance
// single-caller: serialise calls or give each caller its own Processor.
type Processor struct {
	annotator driven.Annotator
	catalog   *Catalog
	scorer    *Scorer
	extractor *Extractor
	history   *domain.ContextBuffer
}

// ProcessorOption customises a Processor.
type ProcessorOption func(*Processor)

// WithContextWindow sets the context buffer capacity.
func WithContextWindow(size int) ProcessorOption {
	return func(p *Processor) {
		p.history = domain.NewContextBuffer(size)
	}
}

// NewProcessor creates a query processor over the given annotator and
// catalog.
func NewProcessor(annotator driven.Annotator, catalog *Catalog, opts ...ProcessorOption) *Processor {
	p := &Processor{
		annotator: annotator,
		catalog:   catalog,
		scorer:    NewScorer(),
		extractor: NewExtractor(),
		history:   domain.NewContextBuffer(domain.DefaultContextWindow),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the full pipeline over one raw query.
//
// Empty or whitespace-only input short-circuits to an "unknown" result
// before the context buffer is touched. Everything downstream of the
// guard degrades rather than fails: unmatched intents and slots come
// back as "unknown" and empty strings.
func (p *Processor) Process(ctx context.Context, rawQuery string) (*domain.QueryResult, error) {
	if strings.TrimSpace(rawQuery) == "" {
		logger.Debug("Empty query, returning unknown")
		return &domain.QueryResult{
			Intent:        domain.IntentUnknown,
			Confidence:    0.0,
			Entities:      map[string]string{},
			Context:       p.history.Snapshot(),
			OriginalQuery: rawQuery,
		}, nil
	}

	if p.annotator == nil {
		return nil, fmt.Errorf("process query: %w", domain.ErrAnnotatorUnavailable)
	}

	normalized := strings.ToLower(rawQuery)
	p.history.Append(normalized)

	doc, err := p.annotator.Annotate(ctx, normalized)
	if err != nil {
		// Annotator errors mean the adapter itself is broken, not that
		// the input was unusual. Surface it; startup selection should
		// have degraded to the basic annotator already.
		return nil, fmt.Errorf("annotate query: %w", err)
	}

	match := p.scorer.SelectBest(doc, rawQuery, p.catalog)
	logger.Info("Intent: %s (confidence %.2f)", match.Intent, match.Confidence)

	entities := p.extractor.Extract(doc, p.catalog.Get(match.Intent))

	return &domain.QueryResult{
		Intent:        match.Intent,
		Confidence:    match.Confidence,
		Entities:      entities,
		Context:       p.history.Snapshot(),
		OriginalQuery: rawQuery,
	}, nil
}

// Context returns a snapshot of the recent-query history, oldest first.
func (p *Processor) Context() []string {
	return p.history.Snapshot()
}

// ClearContext empties the history buffer.
func (p *Processor) ClearContext() {
	p.history.Clear()
}
