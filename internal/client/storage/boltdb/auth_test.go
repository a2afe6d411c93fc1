package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/quartersapp/quarters/internal/client/storage"
)

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	auth := &storage.AuthData{
		Username:    "testuser",
		UserID:      "user-id-123",
		AccessToken: "jwt-access-token",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}

	// Проверяем что GetAuth до сохранения выдаст ErrAuthNotFound
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Сохраняем auth
	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	// Получаем auth и сравниваем
	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, auth.Username, got.Username)
	assert.Equal(t, auth.UserID, got.UserID)
	assert.Equal(t, auth.AccessToken, got.AccessToken)
	assert.Equal(t, auth.ExpiresAt, got.ExpiresAt)

	// IsAuthenticated должна вернуть true (токен не просрочен)
	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authOk)

	// Обновляем auth с истекшим токеном
	auth.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	authOk, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authOk)

	// Удаляем auth
	err = store.DeleteAuth(ctx)
	require.NoError(t, err)

	// После удаления GetAuth должен вернуть ErrAuthNotFound
	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Удаление уже отсутствующего auth — имеет ли ошибку?
	err = store.DeleteAuth(ctx)
	assert.Error(t, err) // ожидаем ошибку, т.к. auth отсутствует
}

func TestStorage_IsAuthenticated_Errors(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Если auth не существует, IsAuthenticated должна вернуть false, nil (не ошибку)
	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authOk)
}

func TestStorage_DeleteAuth_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Для теста удалим bucket auth напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket([]byte("auth"))
	})
	assert.NoError(t, err)

	// Теперь DeleteAuth должен вернуть ошибку "auth bucket not found"
	err = store.DeleteAuth(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "auth bucket not found")
}

func TestStorage_GetAuth_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket auth напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket([]byte("auth"))
	})
	assert.NoError(t, err)

	_, err = store.GetAuth(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "auth bucket not found")
}

func TestStorage_SaveAuth_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket auth напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket([]byte("auth"))
	})
	assert.NoError(t, err)

	err = store.SaveAuth(ctx, &storage.AuthData{
		Username: "test",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "auth bucket not found")
}
