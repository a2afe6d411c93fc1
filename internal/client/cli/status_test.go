package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartersapp/quarters/internal/client/auth"
	"github.com/quartersapp/quarters/internal/client/connectivity"
	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/client/sync"
	"github.com/quartersapp/quarters/internal/models"
)

// TestCli_runStatus_NotAuthenticated проверяет, что без сессии команда
// не трогает сервис синхронизации
func TestCli_runStatus_NotAuthenticated(t *testing.T) {
	ctx := context.Background()

	mockAuth := &auth.ServiceMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return false, nil
		},
	}
	io := newScriptedIO()

	// syncService и connectivity nil: до них дойти не должны
	cli := New(io.mock, mockAuth, nil, nil, Passwords{})

	err := cli.runStatus(ctx)

	require.NoError(t, err)

	output := io.output()
	assert.Contains(t, output, "Account: not authenticated")
	assert.Contains(t, output, "Run 'quarters login' to authenticate")
}

// TestCli_runStatus_Authenticated проверяет полный вывод статуса
func TestCli_runStatus_Authenticated(t *testing.T) {
	ctx := context.Background()
	lastSync := time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)

	mockAuth := &auth.ServiceMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return true, nil
		},
		SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				Username:  "testuser",
				UserID:    "user-1",
				ExpiresAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC).Unix(),
			}, nil
		},
	}
	mockSync := &sync.ServiceMock{
		LastSyncTimeFunc: func(ctx context.Context) (time.Time, error) {
			return lastSync, nil
		},
		PendingCountFunc: func(ctx context.Context) (int, error) {
			return 2, nil
		},
		SyncErrorsFunc: func(ctx context.Context) ([]models.SyncError, error) {
			return []models.SyncError{
				{
					Timestamp: time.Date(2025, 6, 14, 18, 45, 12, 0, time.UTC),
					EntityKey: "game-1",
					Message:   "server error (500)",
				},
			}, nil
		},
	}
	mockMonitor := &connectivity.MonitorMock{
		IsOnlineFunc: func() bool { return true },
	}
	io := newScriptedIO()
	cli := New(io.mock, mockAuth, mockSync, mockMonitor, Passwords{})

	err := cli.runStatus(ctx)

	require.NoError(t, err)

	output := io.output()
	assert.Contains(t, output, "Account: testuser")
	assert.Contains(t, output, "Server: online")
	assert.Contains(t, output, "Last sync: 2025-06-14T18:30:00Z")
	assert.Contains(t, output, "Pending: 2 mutation(s) waiting for sync")
	assert.Contains(t, output, "Recent sync errors:")
	assert.Contains(t, output, "18:45:12  game-1: server error (500)")
}

// TestCli_runStatus_OfflineNoPending проверяет вывод без синхронизаций
// и с пустой очередью
func TestCli_runStatus_OfflineNoPending(t *testing.T) {
	ctx := context.Background()

	mockAuth := &auth.ServiceMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return true, nil
		},
		SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{Username: "testuser", ExpiresAt: 1900000000}, nil
		},
	}
	mockSync := &sync.ServiceMock{
		LastSyncTimeFunc: func(ctx context.Context) (time.Time, error) {
			return time.Time{}, nil
		},
		PendingCountFunc: func(ctx context.Context) (int, error) {
			return 0, nil
		},
		SyncErrorsFunc: func(ctx context.Context) ([]models.SyncError, error) {
			return nil, nil
		},
	}
	mockMonitor := &connectivity.MonitorMock{
		IsOnlineFunc: func() bool { return false },
	}
	io := newScriptedIO()
	cli := New(io.mock, mockAuth, mockSync, mockMonitor, Passwords{})

	err := cli.runStatus(ctx)

	require.NoError(t, err)

	output := io.output()
	assert.Contains(t, output, "Server: offline, changes are queued locally")
	assert.Contains(t, output, "Pending: none, all changes delivered")
	assert.NotContains(t, output, "Last sync:")
	assert.NotContains(t, output, "Recent sync errors:")
}
