package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/models"
)

func TestSaveAndGetLastSync(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально синхронизаций не было - ожидаем нулевое время
	ts, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	// Сохраняем время синхронизации
	expected := time.Date(2025, 6, 14, 15, 30, 45, 123456789, time.UTC)
	require.NoError(t, store.SaveLastSync(ctx, expected))

	// Получаем и проверяем
	got, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.True(t, expected.Equal(got))
}

func TestSaveLastSync_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	require.NoError(t, store.SaveLastSync(ctx, first))
	require.NoError(t, store.SaveLastSync(ctx, second))

	got, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.True(t, second.Equal(got))
}

func TestSaveAndLoadErrors(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально буфер пуст
	errs, err := store.LoadErrors(ctx)
	require.NoError(t, err)
	assert.Empty(t, errs)

	saved := []models.SyncError{
		{
			Timestamp: time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC),
			EntityKey: "game-1",
			Message:   "server error (500): internal",
		},
		{
			Timestamp: time.Date(2025, 6, 14, 10, 5, 0, 0, time.UTC),
			EntityKey: "game-2",
			Message:   "max attempts reached: connection refused",
		},
	}
	require.NoError(t, store.SaveErrors(ctx, saved))

	errs, err = store.LoadErrors(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, errs)
}

func TestSaveErrors_EmptyClearsBuffer(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveErrors(ctx, []models.SyncError{
		{EntityKey: "game-1", Message: "boom"},
	}))
	require.NoError(t, store.SaveErrors(ctx, []models.SyncError{}))

	errs, err := store.LoadErrors(ctx)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestSyncState_ClosedStorage(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.SaveLastSync(ctx, time.Now()), storage.ErrStorageClosed)

	_, err := store.GetLastSync(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	assert.ErrorIs(t, store.SaveErrors(ctx, nil), storage.ErrStorageClosed)

	_, err = store.LoadErrors(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
