package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartersapp/quarters/internal/client/queue"
	"github.com/quartersapp/quarters/internal/client/sync"
	"github.com/quartersapp/quarters/internal/models"
)

func finalizeGameState() map[string]any {
	return map[string]any{
		"game_id":       "game-1",
		"course_name":   "Pebble Creek",
		"hole":          float64(18),
		"quarter_value": float64(25),
		"finalized":     false,
		"players": []any{
			map[string]any{"name": "Alice", "strokes": float64(72), "quarters": float64(6)},
			map[string]any{"name": "Bob", "strokes": float64(78), "quarters": float64(-6)},
		},
	}
}

// TestCli_runFinalize_Success проверяет расчет и фиксацию итогов раунда
func TestCli_runFinalize_Success(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		LoadLocalSnapshotFunc: func(ctx context.Context, entityKey string) (map[string]any, bool, error) {
			return finalizeGameState(), true, nil
		},
		SaveLocalSnapshotFunc: func(ctx context.Context, entityKey string, state map[string]any) error {
			return nil
		},
		EnqueueFunc: func(ctx context.Context, entityKey string, kind models.MutationKind, payload map[string]any, opts ...queue.EnqueueOption) (string, error) {
			return "m1", nil
		},
		ProcessQueueFunc: func(ctx context.Context) (models.ProcessResult, error) {
			return models.ProcessResult{SyncedCount: 1}, nil
		},
	}
	io := newScriptedIO("y")
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runFinalize(ctx, []string{"game-1"})

	require.NoError(t, err)
	require.Len(t, mockSync.SaveLocalSnapshotCalls(), 1)
	require.Len(t, mockSync.EnqueueCalls(), 1)

	saved := mockSync.SaveLocalSnapshotCalls()[0]
	assert.Equal(t, true, saved.State["finalized"])

	queued := mockSync.EnqueueCalls()[0]
	assert.Equal(t, "game-1", queued.EntityKey)
	assert.Equal(t, models.KindFinalize, queued.Kind)

	output := io.output()
	assert.Contains(t, output, "+6 quarters")
	assert.Contains(t, output, "$1.50")
	assert.Contains(t, output, "-$1.50")
	assert.Contains(t, output, "Round finalized!")
}

// TestCli_runFinalize_Cancelled проверяет отказ от финализации
func TestCli_runFinalize_Cancelled(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		LoadLocalSnapshotFunc: func(ctx context.Context, entityKey string) (map[string]any, bool, error) {
			return finalizeGameState(), true, nil
		},
	}
	io := newScriptedIO("n")
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runFinalize(ctx, []string{"game-1"})

	require.NoError(t, err)
	assert.Empty(t, mockSync.SaveLocalSnapshotCalls())
	assert.Empty(t, mockSync.EnqueueCalls())
	assert.Contains(t, io.output(), "Cancelled.")
}

// TestCli_runFinalize_AlreadyFinalized проверяет повторную финализацию
func TestCli_runFinalize_AlreadyFinalized(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		LoadLocalSnapshotFunc: func(ctx context.Context, entityKey string) (map[string]any, bool, error) {
			state := finalizeGameState()
			state["finalized"] = true
			return state, true, nil
		},
	}
	io := newScriptedIO()
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runFinalize(ctx, []string{"game-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already finalized")
}
