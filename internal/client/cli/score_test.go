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

// scoreGameState возвращает состояние раунда, каким оно приходит из
// bbolt: после json.Unmarshal числа становятся float64, а игроки []any
func scoreGameState() map[string]any {
	return map[string]any{
		"game_id":       "game-1",
		"course_name":   "Pebble Creek",
		"hole":          float64(4),
		"quarter_value": float64(25),
		"finalized":     false,
		"players": []any{
			map[string]any{"name": "Alice", "strokes": float64(12), "quarters": float64(1)},
			map[string]any{"name": "Bob", "strokes": float64(14), "quarters": float64(-1)},
		},
	}
}

// TestCli_runScore_Success проверяет запись лунки: снапшот мутируется,
// продвигается номер лунки и мутация ставится в очередь
func TestCli_runScore_Success(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		LoadLocalSnapshotFunc: func(ctx context.Context, entityKey string) (map[string]any, bool, error) {
			return scoreGameState(), true, nil
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
	// Лунка по умолчанию, затем: Alice 4 удара +2 квотера, Bob 5 ударов -2
	io := newScriptedIO("", "4", "2", "5", "-2")
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runScore(ctx, []string{"game-1"})

	require.NoError(t, err)
	require.Len(t, mockSync.SaveLocalSnapshotCalls(), 1)
	require.Len(t, mockSync.EnqueueCalls(), 1)
	require.Len(t, mockSync.ProcessQueueCalls(), 1)

	saved := mockSync.SaveLocalSnapshotCalls()[0]
	assert.Equal(t, "game-1", saved.EntityKey)
	assert.Equal(t, 5, saved.State["hole"])

	players, ok := saved.State["players"].([]any)
	require.True(t, ok)
	alice := players[0].(map[string]any)
	bob := players[1].(map[string]any)
	assert.Equal(t, 16, alice["strokes"])
	assert.Equal(t, 3, alice["quarters"])
	assert.Equal(t, 19, bob["strokes"])
	assert.Equal(t, -3, bob["quarters"])

	queued := mockSync.EnqueueCalls()[0]
	assert.Equal(t, "game-1", queued.EntityKey)
	assert.Equal(t, models.KindProgress, queued.Kind)
	assert.Equal(t, 5, queued.Payload["hole"])

	output := io.output()
	assert.Contains(t, output, "Hole 4 recorded")
	assert.Contains(t, output, "All changes delivered to the server")
}

// TestCli_runScore_MissingGameID проверяет ошибку без аргумента
func TestCli_runScore_MissingGameID(t *testing.T) {
	ctx := context.Background()

	io := newScriptedIO()
	cli := New(io.mock, nil, &sync.ServiceMock{}, nil, Passwords{})

	err := cli.runScore(ctx, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing game id")
}

// TestCli_runScore_UnknownGame проверяет ошибку для чужого game id
func TestCli_runScore_UnknownGame(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		LoadLocalSnapshotFunc: func(ctx context.Context, entityKey string) (map[string]any, bool, error) {
			return nil, false, nil
		},
	}
	io := newScriptedIO()
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runScore(ctx, []string{"nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no local state for game nope")
}

// TestCli_runScore_FinalizedRound проверяет запрет правок после
// финализации
func TestCli_runScore_FinalizedRound(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		LoadLocalSnapshotFunc: func(ctx context.Context, entityKey string) (map[string]any, bool, error) {
			state := scoreGameState()
			state["finalized"] = true
			return state, true, nil
		},
	}
	io := newScriptedIO()
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runScore(ctx, []string{"game-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already finalized")
}

// TestCli_runScore_BadStrokes проверяет, что при невалидном вводе
// снапшот не перезаписывается
func TestCli_runScore_BadStrokes(t *testing.T) {
	ctx := context.Background()

	mockSync := &sync.ServiceMock{
		LoadLocalSnapshotFunc: func(ctx context.Context, entityKey string) (map[string]any, bool, error) {
			return scoreGameState(), true, nil
		},
	}
	io := newScriptedIO("", "0")
	cli := New(io.mock, nil, mockSync, nil, Passwords{})

	err := cli.runScore(ctx, []string{"game-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "strokes must be a positive number")
	assert.Empty(t, mockSync.SaveLocalSnapshotCalls())
	assert.Empty(t, mockSync.EnqueueCalls())
}
