package auth

import (
	"context"

	"github.com/quartersapp/quarters/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service определяет операции управления учетной записью игрока.
// Сессия (JWT access token) хранится локально, чтобы очередь
// синхронизации могла отправлять мутации без повторного логина.
type Service interface {
	// Register регистрирует нового игрока на сервере
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию локально
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// IsAuthenticated сообщает, есть ли действующая (не истекшая) сессия
	IsAuthenticated(ctx context.Context) (bool, error)

	// Session возвращает сохраненную сессию
	Session(ctx context.Context) (*storage.AuthData, error)
}
