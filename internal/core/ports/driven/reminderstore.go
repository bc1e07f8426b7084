package driven

import (
	"context"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// ReminderStore persists reminders set through the set_reminder intent.
type ReminderStore interface {
	// Save stores or updates a reminder by ID.
	Save(ctx context.Context, reminder *domain.Reminder) error

	// List returns all reminders, newest first.
	List(ctx context.Context) ([]domain.Reminder, error)

	// Delete removes a reminder by ID.
	Delete(ctx context.Context, id string) error
}
