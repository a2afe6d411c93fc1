package cli

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartersapp/quarters/internal/client/sync"
	"github.com/quartersapp/quarters/internal/models"
)

// TestCli_runStart_Success проверяет создание раунда: снапшот пишется
// до отправки и не содержит служебных полей в payload
func TestCli_runStart_Success(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		SaveLocalSnapshotFunc: func(ctx context.Context, entityKey string, state map[string]any) error {
			return nil
		},
		SyncMutationFunc: func(ctx context.Context, entityKey string, payload map[string]any) (models.MutationResult, error) {
			return models.MutationResult{Success: true, Synced: true}, nil
		},
	}
	io := newScriptedIO("Pebble Creek", "Alice, Bob", "")
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runStart(ctx)

	require.NoError(t, err)
	require.Len(t, mockSync.SaveLocalSnapshotCalls(), 1)
	require.Len(t, mockSync.SyncMutationCalls(), 1)

	saved := mockSync.SaveLocalSnapshotCalls()[0]
	_, parseErr := uuid.Parse(saved.EntityKey)
	assert.NoError(t, parseErr, "game id must be a UUID")

	assert.Equal(t, "Pebble Creek", saved.State["course_name"])
	assert.Equal(t, 1, saved.State["hole"])
	assert.Equal(t, defaultQuarterValue, saved.State["quarter_value"])
	assert.Equal(t, false, saved.State["finalized"])

	players, ok := saved.State["players"].([]any)
	require.True(t, ok)
	require.Len(t, players, 2)
	first, ok := players[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", first["name"])
	assert.Equal(t, 0, first["strokes"])
	assert.Equal(t, 0, first["quarters"])

	pushed := mockSync.SyncMutationCalls()[0]
	assert.Equal(t, saved.EntityKey, pushed.EntityKey)
	assert.NotContains(t, pushed.Payload, "finalized")
	assert.NotContains(t, pushed.Payload, "game_id")

	output := io.output()
	assert.Contains(t, output, "Round started!")
	assert.Contains(t, output, "Round registered on server")
}

// TestCli_runStart_QueuedWhenOffline проверяет вывод, когда создание
// раунда ушло в очередь
func TestCli_runStart_QueuedWhenOffline(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		SaveLocalSnapshotFunc: func(ctx context.Context, entityKey string, state map[string]any) error {
			return nil
		},
		SyncMutationFunc: func(ctx context.Context, entityKey string, payload map[string]any) (models.MutationResult, error) {
			return models.MutationResult{Success: true, Queued: true}, nil
		},
	}
	io := newScriptedIO("Pebble Creek", "Alice, Bob, Carol", "50")
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runStart(ctx)

	require.NoError(t, err)
	assert.Equal(t, 50, mockSync.SaveLocalSnapshotCalls()[0].State["quarter_value"])
	assert.Contains(t, io.output(), "Round queued, will sync when the server is reachable")
}

// TestCli_runStart_NeedsTwoPlayers проверяет валидацию списка игроков
func TestCli_runStart_NeedsTwoPlayers(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{}
	io := newScriptedIO("Pebble Creek", "Alice")
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runStart(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two players")
	assert.Empty(t, mockSync.SaveLocalSnapshotCalls())
}

// TestCli_runStart_BadQuarterValue проверяет валидацию ставки
func TestCli_runStart_BadQuarterValue(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{}
	io := newScriptedIO("Pebble Creek", "Alice, Bob", "zero")
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runStart(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quarter value must be a positive number")
	assert.Empty(t, mockSync.SaveLocalSnapshotCalls())
}
