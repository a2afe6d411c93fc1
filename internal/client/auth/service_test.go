package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartersapp/quarters/internal/client/api"
	"github.com/quartersapp/quarters/internal/client/storage"
	pkgapi "github.com/quartersapp/quarters/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Register(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			return &pkgapi.RegisterResponse{
				UserID:  "user-123",
				Message: "registration successful",
			}, nil
		},
	}

	svc := NewService(apiMock, &storage.AuthStorageMock{}, clockwork.NewFakeClock(), testLogger())

	result, err := svc.Register(context.Background(), "golfer", "secure_password")
	require.NoError(t, err)
	assert.Equal(t, "user-123", result.UserID)
	assert.Equal(t, "golfer", result.Username)
	assert.Equal(t, "registration successful", result.Message)

	calls := apiMock.RegisterCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "golfer", calls[0].Req.Username)
	assert.Equal(t, "secure_password", calls[0].Req.Password)
}

func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		errMsg   string
	}{
		{
			name:     "too short username",
			username: "ab",
			password: "secure_password",
			errMsg:   "invalid username",
		},
		{
			name:     "username with invalid chars",
			username: "alice smith",
			password: "secure_password",
			errMsg:   "invalid username",
		},
		{
			name:     "too short password",
			username: "golfer",
			password: "short",
			errMsg:   "invalid password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiMock := &api.ClientAPIMock{}
			svc := NewService(apiMock, &storage.AuthStorageMock{}, clockwork.NewFakeClock(), testLogger())

			_, err := svc.Register(context.Background(), tt.username, tt.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			// До сервера запрос не доходит
			assert.Empty(t, apiMock.RegisterCalls())
		})
	}
}

func TestService_Register_ServerError(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			return nil, &api.Error{StatusCode: 409, Message: "user already exists"}
		},
	}

	svc := NewService(apiMock, &storage.AuthStorageMock{}, clockwork.NewFakeClock(), testLogger())

	_, err := svc.Register(context.Background(), "golfer", "secure_password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registration failed")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestService_Login(t *testing.T) {
	clock := clockwork.NewFakeClock()

	apiMock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken: "jwt_token",
				UserID:      "user-123",
				ExpiresIn:   3600,
			}, nil
		},
	}

	var saved *storage.AuthData
	authMock := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			saved = auth
			return nil
		},
	}

	svc := NewService(apiMock, authMock, clock, testLogger())

	result, err := svc.Login(context.Background(), "golfer", "secure_password")
	require.NoError(t, err)
	assert.Equal(t, "golfer", result.Username)
	assert.Equal(t, "user-123", result.UserID)
	assert.Equal(t, clock.Now().Unix()+3600, result.ExpiresAt)

	require.NotNil(t, saved)
	assert.Equal(t, "golfer", saved.Username)
	assert.Equal(t, "user-123", saved.UserID)
	assert.Equal(t, "jwt_token", saved.AccessToken)
	assert.Equal(t, clock.Now().Unix()+3600, saved.ExpiresAt)
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return nil, &api.Error{StatusCode: 401, Message: "invalid credentials"}
		},
	}

	authMock := &storage.AuthStorageMock{}
	svc := NewService(apiMock, authMock, clockwork.NewFakeClock(), testLogger())

	_, err := svc.Login(context.Background(), "golfer", "wrong_password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
	assert.Empty(t, authMock.SaveAuthCalls())
}

func TestService_Login_SaveSessionFails(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{AccessToken: "jwt_token", UserID: "user-123", ExpiresIn: 3600}, nil
		},
	}
	authMock := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			return errors.New("disk full")
		},
	}

	svc := NewService(apiMock, authMock, clockwork.NewFakeClock(), testLogger())

	_, err := svc.Login(context.Background(), "golfer", "secure_password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session")
}

func TestService_Logout(t *testing.T) {
	authMock := &storage.AuthStorageMock{
		DeleteAuthFunc: func(ctx context.Context) error {
			return nil
		},
	}

	svc := NewService(&api.ClientAPIMock{}, authMock, clockwork.NewFakeClock(), testLogger())

	require.NoError(t, svc.Logout(context.Background()))
	assert.Len(t, authMock.DeleteAuthCalls(), 1)
}

func TestService_Logout_Error(t *testing.T) {
	authMock := &storage.AuthStorageMock{
		DeleteAuthFunc: func(ctx context.Context) error {
			return errors.New("storage is closed")
		},
	}

	svc := NewService(&api.ClientAPIMock{}, authMock, clockwork.NewFakeClock(), testLogger())

	err := svc.Logout(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete session")
}

func TestService_IsAuthenticated(t *testing.T) {
	clock := clockwork.NewFakeClock()

	tests := []struct {
		name    string
		auth    *storage.AuthData
		authErr error
		want    bool
		wantErr bool
	}{
		{
			name:    "no session",
			authErr: storage.ErrAuthNotFound,
			want:    false,
		},
		{
			name: "valid session",
			auth: &storage.AuthData{
				AccessToken: "jwt_token",
				ExpiresAt:   clock.Now().Add(time.Hour).Unix(),
			},
			want: true,
		},
		{
			name: "expired session",
			auth: &storage.AuthData{
				AccessToken: "jwt_token",
				ExpiresAt:   clock.Now().Add(-time.Minute).Unix(),
			},
			want: false,
		},
		{
			name: "session without expiry",
			auth: &storage.AuthData{
				AccessToken: "jwt_token",
			},
			want: true,
		},
		{
			name:    "storage failure",
			authErr: errors.New("disk broken"),
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := &storage.AuthStorageMock{
				GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
					return tt.auth, tt.authErr
				},
			}

			svc := NewService(&api.ClientAPIMock{}, authMock, clock, testLogger())

			got, err := svc.IsAuthenticated(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Session(t *testing.T) {
	want := &storage.AuthData{Username: "golfer", AccessToken: "jwt_token"}
	authMock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return want, nil
		},
	}

	svc := NewService(&api.ClientAPIMock{}, authMock, clockwork.NewFakeClock(), testLogger())

	got, err := svc.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
