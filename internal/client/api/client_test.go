package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartersapp/quarters/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Декодируем запрос
		var req api.RegisterRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		// Проверяем поля запроса
		assert.Equal(t, "golfer", req.Username)
		assert.NotEmpty(t, req.Password)

		// Возвращаем успешный ответ
		w.WriteHeader(http.StatusCreated)
		resp := api.RegisterResponse{
			UserID:  "user-123",
			Message: "Registration successful",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	// Создаем клиент
	client := NewClient(server.URL)

	// Выполняем запрос
	ctx := context.Background()
	req := api.RegisterRequest{
		Username: "golfer",
		Password: "long-enough-pass",
	}

	resp, err := client.Register(ctx, req)

	// Проверяем результат
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, "Registration successful", resp.Message)
}

// TestClient_Register_Error проверяет обработку ошибок при регистрации
func TestClient_Register_Error(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:       "User already exists",
			statusCode: http.StatusConflict,
			responseBody: api.ErrorResponse{
				Message: "user already exists",
			},
			expectedErrMsg: "server error (409): user already exists",
		},
		{
			name:       "Invalid request",
			statusCode: http.StatusBadRequest,
			responseBody: api.ErrorResponse{
				Message: "invalid username",
			},
			expectedErrMsg: "server error (400): invalid username",
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "server error (500): Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL)
			ctx := context.Background()
			req := api.RegisterRequest{
				Username: "golfer",
				Password: "long-enough-pass",
			}

			resp, err := client.Register(ctx, req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

// TestClient_Login проверяет успешный логин
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, "golfer", req.Username)
		assert.NotEmpty(t, req.Password)

		w.WriteHeader(http.StatusOK)
		resp := api.TokenResponse{
			UserID:      "user-uuid-123",
			AccessToken: "access_token_123",
			ExpiresIn:   3600,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()
	req := api.LoginRequest{
		Username: "golfer",
		Password: "long-enough-pass",
	}

	resp, err := client.Login(ctx, req)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-uuid-123", resp.UserID)
	assert.Equal(t, "access_token_123", resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

// TestClient_Login_InvalidCredentials проверяет обработку неверных учетных данных
func TestClient_Login_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		resp := api.ErrorResponse{
			Message: "invalid credentials",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()
	req := api.LoginRequest{
		Username: "golfer",
		Password: "wrong-pass",
	}

	resp, err := client.Login(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "server error (401): invalid credentials")
}

// TestClient_PushProgress проверяет отправку прогресса раунда
func TestClient_PushProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/v1/games/game-42/progress", r.URL.Path)
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		err := json.NewDecoder(r.Body).Decode(&payload)
		require.NoError(t, err)

		// JSON числа декодируются как float64
		assert.Equal(t, float64(7), payload["hole"])
		assert.Equal(t, "Pebble Creek", payload["course_name"])

		w.WriteHeader(http.StatusOK)
		resp := api.GameResponse{
			Game: api.GameState{
				GameID:     "game-42",
				CourseName: "Pebble Creek",
				Hole:       7,
				UpdatedAt:  time.Now(),
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()
	payload := map[string]any{
		"hole":        7,
		"course_name": "Pebble Creek",
	}

	resp, err := client.PushProgress(ctx, "test_token", "game-42", payload)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "game-42", resp.Game.GameID)
	assert.Equal(t, 7, resp.Game.Hole)
}

// TestClient_PushProgress_ServerError проверяет что статус код
// сохраняется в типизированной ошибке
func TestClient_PushProgress_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		resp := api.ErrorResponse{
			Message: "database unavailable",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.PushProgress(ctx, "test_token", "game-42", map[string]any{"hole": 1})

	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.True(t, apiErr.IsServerError())
	assert.Contains(t, apiErr.Message, "database unavailable")
}

// TestClient_FinalizeGame проверяет завершение раунда
func TestClient_FinalizeGame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/games/game-42/finalize", r.URL.Path)
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		resp := api.GameResponse{
			Game: api.GameState{
				GameID:    "game-42",
				Finalized: true,
				UpdatedAt: time.Now(),
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.FinalizeGame(ctx, "test_token", "game-42", map[string]any{})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.True(t, resp.Game.Finalized)
}

// TestClient_GetGame проверяет получение состояния раунда
func TestClient_GetGame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/games/game-42", r.URL.Path)
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		resp := api.GameResponse{
			Game: api.GameState{
				GameID:       "game-42",
				CourseName:   "Pebble Creek",
				Hole:         12,
				QuarterValue: 25,
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.GetGame(ctx, "test_token", "game-42")

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "game-42", resp.Game.GameID)
	assert.Equal(t, 12, resp.Game.Hole)
	assert.Equal(t, 25, resp.Game.QuarterValue)
}

// TestClient_GetGame_NotFound проверяет обработку несуществующего раунда
func TestClient_GetGame_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		resp := api.ErrorResponse{
			Message: "game not found",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.GetGame(ctx, "test_token", "missing")

	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.False(t, apiErr.IsServerError())
}

// TestClient_Health проверяет health check
func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		// Health не требует авторизации
		assert.Empty(t, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		resp := api.HealthResponse{Status: "ok", Version: "dev"}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	err := client.Health(ctx)

	require.NoError(t, err)
}

// TestClient_Health_Unavailable проверяет обработку недоступного сервера
func TestClient_Health_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		resp := api.ErrorResponse{
			Message: "shutting down",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	err := client.Health(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error (503): shutting down")
}

// TestClient_ContextCancellation проверяет отмену запроса через контекст
func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Имитируем долгий запрос
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	// Создаем контекст с таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req := api.RegisterRequest{
		Username: "golfer",
		Password: "long-enough-pass",
	}

	resp, err := client.Register(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

// TestClient_InvalidJSON проверяет обработку невалидного JSON в ответе
func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("invalid json {{{"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()
	req := api.RegisterRequest{
		Username: "golfer",
		Password: "long-enough-pass",
	}

	resp, err := client.Register(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to decode response")
}

// TestClient_RedirectKeepsAuthHeader проверяет что заголовок Authorization
// копируется при редиректе
func TestClient_RedirectKeepsAuthHeader(t *testing.T) {
	redirectCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if redirectCount < 3 {
			redirectCount++
			w.Header().Set("Location", "/redirected")
			w.WriteHeader(http.StatusFound)
			return
		}

		// После редиректов заголовок должен сохраниться
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		resp := api.GameResponse{
			Game: api.GameState{GameID: "game-42"},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.GetGame(ctx, "test_token", "game-42")

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "game-42", resp.Game.GameID)
	assert.Equal(t, 3, redirectCount) // Проверяем что было 3 редиректа
}
