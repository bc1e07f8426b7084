package driven

import (
	"context"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// Annotator turns raw text into an annotated document. Two
// implementations exist: the model-backed annotator and the basic
// whitespace annotator. Both satisfy the same output contract, so the
// pipeline is mode-agnostic; selection happens once at startup, never
// per call.
type Annotator interface {
	// Annotate analyses the given text. It must not fail for ordinary
	// linguistic variability; an error indicates the annotator itself is
	// broken.
	Annotate(ctx context.Context, text string) (*domain.AnnotatedDocument, error)

	// Name identifies the implementation for status reporting.
	Name() string
}
