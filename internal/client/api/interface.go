package api

import (
	"context"

	"github.com/quartersapp/quarters/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента сервера Quarters.
// Выделен в интерфейс, чтобы координатор синхронизации и CLI
// тестировались без реального сервера.
type ClientAPI interface {
	// Register регистрирует нового игрока
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию игрока
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// PushProgress отправляет слитый payload правок раунда (идемпотентный upsert)
	PushProgress(ctx context.Context, accessToken, gameID string, payload map[string]any) (*api.GameResponse, error)

	// FinalizeGame завершает раунд (повтор - no-op)
	FinalizeGame(ctx context.Context, accessToken, gameID string, payload map[string]any) (*api.GameResponse, error)

	// GetGame возвращает серверное состояние раунда
	GetGame(ctx context.Context, accessToken, gameID string) (*api.GameResponse, error)

	// Health проверяет доступность сервера
	Health(ctx context.Context) error
}

// Проверка реализации интерфейса
var _ ClientAPI = (*Client)(nil)
