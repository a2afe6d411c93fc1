package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/quartersapp/quarters/internal/client/api"
	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/validation"
	pkgapi "github.com/quartersapp/quarters/pkg/api"
)

type service struct {
	apiClient   api.ClientAPI
	authStorage storage.AuthStorage
	clock       clockwork.Clock
	logger      *slog.Logger
}

// NewService создает сервис авторизации
func NewService(apiClient api.ClientAPI, authStorage storage.AuthStorage, clock clockwork.Clock, logger *slog.Logger) Service {
	return &service{
		apiClient:   apiClient,
		authStorage: authStorage,
		clock:       clock,
		logger:      logger,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string // username
	Message  string // сообщение сервера
}

// Register регистрирует нового игрока.
// Пароль передается на сервер как есть и хешируется там,
// локально ничего не сохраняется: после регистрации нужен Login.
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("player registered", slog.String("username", username))

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
		Message:  resp.Message,
	}, nil
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	Username  string // username
	UserID    string // UUID пользователя
	ExpiresAt int64  // срок действия сессии, unix seconds
}

// Login выполняет аутентификацию и сохраняет сессию в локальном
// хранилище. Очередь синхронизации берет токен оттуда.
func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt := s.clock.Now().Unix() + resp.ExpiresIn
	auth := &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   expiresAt,
	}
	if err := s.authStorage.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("player logged in", slog.String("username", username))

	return &LoginResult{
		Username:  username,
		UserID:    resp.UserID,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout удаляет локальную сессию. Сервер не уведомляется:
// access token короткоживущий и истекает сам.
func (s *service) Logout(ctx context.Context) error {
	if err := s.authStorage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("player logged out")
	return nil
}

// IsAuthenticated проверяет наличие сессии и ее срок действия
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get session: %w", err)
	}

	if auth.ExpiresAt > 0 && s.clock.Now().Unix() >= auth.ExpiresAt {
		return false, nil
	}
	return true, nil
}

// Session возвращает сохраненную сессию
func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.authStorage.GetAuth(ctx)
}
