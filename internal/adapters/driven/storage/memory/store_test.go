package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

func TestReminderStore(t *testing.T) {
	store := NewReminderStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Reminder{
		ID: "r1", Task: "buy milk", Time: "5pm",
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.Save(ctx, &domain.Reminder{
		ID: "r2", Task: "call mom", Time: "noon",
		CreatedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	}))

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)

	require.NoError(t, store.Delete(ctx, "r2"))
	got, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)

	assert.ErrorIs(t, store.Save(ctx, &domain.Reminder{Task: "no id"}), domain.ErrInvalidInput)
}

func TestConversationStore(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	for _, id := range []string{"t1", "t2", "t3"} {
		require.NoError(t, store.Record(ctx, &domain.Turn{ID: id, Query: "q", Reply: "r"}))
	}

	got, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t3", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)

	got, err = store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	assert.ErrorIs(t, store.Record(ctx, &domain.Turn{Query: "no id"}), domain.ErrInvalidInput)
}
