package driven

import (
	"context"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// ConversationStore records processed turns for history and auditing.
// Recording is best-effort from the dispatcher's point of view; a store
// failure never fails the turn.
type ConversationStore interface {
	// Record appends a turn to the history.
	Record(ctx context.Context, turn *domain.Turn) error

	// Recent returns the most recent turns, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Turn, error)
}
