package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// conversationStore implements driven.ConversationStore.
type conversationStore struct {
	store *Store
}

var _ driven.ConversationStore = (*conversationStore)(nil)

// Record appends a turn to the history.
func (s *conversationStore) Record(ctx context.Context, turn *domain.Turn) error {
	if turn == nil || turn.ID == "" {
		return domain.ErrInvalidInput
	}

	entitiesJSON, err := json.Marshal(turn.Entities)
	if err != nil {
		return fmt.Errorf("marshalling entities: %w", err)
	}

	createdAt := turn.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO conversation_turns (id, query, intent, confidence, entities, reply, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, turn.ID, turn.Query, turn.Intent, turn.Confidence,
		string(entitiesJSON), turn.Reply, createdAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("recording turn: %w", err)
	}
	return nil
}

// Recent returns the most recent turns, newest first.
func (s *conversationStore) Recent(ctx context.Context, limit int) ([]domain.Turn, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, query, intent, confidence, entities, reply, created_at
		FROM conversation_turns
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.Turn //nolint:prealloc // size unknown from query
	for rows.Next() {
		var turn domain.Turn
		var entitiesJSON, createdAt string
		if err := rows.Scan(&turn.ID, &turn.Query, &turn.Intent,
			&turn.Confidence, &entitiesJSON, &turn.Reply, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}

		if entitiesJSON != "" {
			if err := json.Unmarshal([]byte(entitiesJSON), &turn.Entities); err != nil {
				return nil, fmt.Errorf("unmarshaling entities: %w", err)
			}
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			turn.CreatedAt = t
		}
		turns = append(turns, turn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}

	return turns, nil
}
