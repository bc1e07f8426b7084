package mcp

import (
	"context"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	action   *domain.ActionResult
	result   *domain.QueryResult
	status   domain.Status
	spoken   []string
	speakErr error
	err      error
}

func (m *mockAssistantService) ProcessCommand(
	_ context.Context,
	_ string,
) (*domain.ActionResult, *domain.QueryResult, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.action, m.result, nil
}

func (m *mockAssistantService) Speak(_ context.Context, text string) error {
	if m.speakErr != nil {
		return m.speakErr
	}
	m.spoken = append(m.spoken, text)
	return nil
}

func (m *mockAssistantService) Status(_ context.Context) domain.Status {
	return m.status
}

func (m *mockAssistantService) Authenticate(_ context.Context) (domain.AuthResult, error) {
	return domain.AuthResult{Authenticated: true, Confidence: 1.0}, nil
}

// mockReminderStore is a mock implementation of driven.ReminderStore.
type mockReminderStore struct {
	reminders []domain.Reminder
	err       error
}

func (m *mockReminderStore) Save(_ context.Context, _ *domain.Reminder) error {
	return m.err
}

func (m *mockReminderStore) List(_ context.Context) ([]domain.Reminder, error) {
	return m.reminders, m.err
}

func (m *mockReminderStore) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockConversationStore is a mock implementation of driven.ConversationStore.
type mockConversationStore struct {
	turns []domain.Turn
	err   error
}

func (m *mockConversationStore) Record(_ context.Context, _ *domain.Turn) error {
	return m.err
}

func (m *mockConversationStore) Recent(_ context.Context, limit int) ([]domain.Turn, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.turns) {
		return m.turns[:limit], nil
	}
	return m.turns, nil
}
