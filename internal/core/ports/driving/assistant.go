package driving

import (
	"context"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// QueryProcessor runs the NLP pipeline over a single raw query.
// Implementations are deterministic and purely computational; callers
// must serialise calls to one instance because of the context buffer.
type QueryProcessor interface {
	// Process normalises, annotates, scores and extracts one query.
	Process(ctx context.Context, rawQuery string) (*domain.QueryResult, error)

	// Context returns a snapshot of the recent-query history.
	Context() []string

	// ClearContext empties the history buffer.
	ClearContext()
}

// AssistantService is the full assistant surface: process a command and
// act on it, speak, report status, authenticate.
type AssistantService interface {
	// ProcessCommand runs the query pipeline and dispatches the selected
	// intent to its handler, returning both the action outcome and the
	// underlying NLP result.
	ProcessCommand(ctx context.Context, query string) (*domain.ActionResult, *domain.QueryResult, error)

	// Speak sends text to the speech synthesizer.
	Speak(ctx context.Context, text string) error

	// Status reports system status and capabilities.
	Status(ctx context.Context) domain.Status

	// Authenticate runs face authentication.
	Authenticate(ctx context.Context) (domain.AuthResult, error)
}
