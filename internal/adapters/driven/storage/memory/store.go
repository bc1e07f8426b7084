// Package memory provides in-memory implementations of the persistence
// ports. Nothing survives a restart; it backs tests and ephemeral runs
// where a database on disk is unwanted.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Ensure the stores implement their interfaces.
var (
	_ driven.ReminderStore     = (*ReminderStore)(nil)
	_ driven.ConversationStore = (*ConversationStore)(nil)
)

// ReminderStore keeps reminders in a map guarded by a mutex.
type ReminderStore struct {
	mu        sync.RWMutex
	reminders map[string]domain.Reminder
}

// NewReminderStore creates an empty in-memory reminder store.
func NewReminderStore() *ReminderStore {
	return &ReminderStore{reminders: make(map[string]domain.Reminder)}
}

// Save stores or updates a reminder by ID.
func (s *ReminderStore) Save(_ context.Context, reminder *domain.Reminder) error {
	if reminder == nil || reminder.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders[reminder.ID] = *reminder
	return nil
}

// List returns all reminders, newest first.
func (s *ReminderStore) List(_ context.Context) ([]domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]domain.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		reminders = append(reminders, r)
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].CreatedAt.After(reminders[j].CreatedAt)
	})
	return reminders, nil
}

// Delete removes a reminder by ID. Missing IDs are not an error.
func (s *ReminderStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reminders, id)
	return nil
}

// ConversationStore keeps turns in an append-only slice.
type ConversationStore struct {
	mu    sync.RWMutex
	turns []domain.Turn
}

// NewConversationStore creates an empty in-memory conversation store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{}
}

// Record appends a turn to the history.
func (s *ConversationStore) Record(_ context.Context, turn *domain.Turn) error {
	if turn == nil || turn.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, *turn)
	return nil
}

// Recent returns the most recent turns, newest first.
func (s *ConversationStore) Recent(_ context.Context, limit int) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit > len(s.turns) {
		limit = len(s.turns)
	}
	recent := make([]domain.Turn, 0, limit)
	for i := len(s.turns) - 1; i >= len(s.turns)-limit; i-- {
		recent = append(recent, s.turns[i])
	}
	return recent, nil
}
