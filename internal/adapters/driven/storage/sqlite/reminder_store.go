package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// reminderStore implements driven.ReminderStore.
type reminderStore struct {
	store *Store
}

var _ driven.ReminderStore = (*reminderStore)(nil)

// Save stores or updates a reminder by ID.
func (s *reminderStore) Save(ctx context.Context, reminder *domain.Reminder) error {
	if reminder == nil || reminder.ID == "" {
		return domain.ErrInvalidInput
	}

	createdAt := reminder.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO reminders (id, task, time, done, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			task = excluded.task,
			time = excluded.time,
			done = excluded.done
	`, reminder.ID, reminder.Task, reminder.Time,
		boolToInt(reminder.Done), createdAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("saving reminder: %w", err)
	}
	return nil
}

// List returns all reminders, newest first.
func (s *reminderStore) List(ctx context.Context) ([]domain.Reminder, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, task, time, done, created_at
		FROM reminders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reminders: %w", err)
	}
	defer rows.Close()

	var reminders []domain.Reminder //nolint:prealloc // size unknown from query
	for rows.Next() {
		var reminder domain.Reminder
		var done int
		var createdAt string
		if err := rows.Scan(&reminder.ID, &reminder.Task, &reminder.Time,
			&done, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		reminder.Done = done == 1
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			reminder.CreatedAt = t
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}

	return reminders, nil
}

// Delete removes a reminder by ID.
func (s *reminderStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return nil
}

// boolToInt converts a bool to 1 (true) or 0 (false).
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
