package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quartersapp/quarters/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером Quarters
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового игрока
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию игрока
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// PushProgress отправляет слитый payload инкрементальных правок раунда.
// Эндпоинт идемпотентен (upsert по gameID): очередь гарантирует доставку
// at-least-once, повтор уже принятого payload безопасен.
func (c *Client) PushProgress(ctx context.Context, accessToken, gameID string, payload map[string]any) (*api.GameResponse, error) {
	var resp api.GameResponse
	path := fmt.Sprintf("/api/v1/games/%s/progress", gameID)
	if err := c.doRequest(ctx, "PUT", path, accessToken, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FinalizeGame завершает и рассчитывает раунд.
// Повторный вызов для уже завершенного раунда - no-op на сервере.
func (c *Client) FinalizeGame(ctx context.Context, accessToken, gameID string, payload map[string]any) (*api.GameResponse, error) {
	var resp api.GameResponse
	path := fmt.Sprintf("/api/v1/games/%s/finalize", gameID)
	if err := c.doRequest(ctx, "POST", path, accessToken, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetGame возвращает серверное состояние раунда.
// Используется после восстановления связи для сравнения
// server updated_at с локальным снапшотом.
func (c *Client) GetGame(ctx context.Context, accessToken, gameID string) (*api.GameResponse, error) {
	var resp api.GameResponse
	path := fmt.Sprintf("/api/v1/games/%s", gameID)
	if err := c.doRequest(ctx, "GET", path, accessToken, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health проверяет доступность сервера.
// Используется монитором связи как probe.
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, "GET", "/api/v1/health", "", nil, &resp); err != nil {
		return err
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Не-2xx превращаем в типизированную ошибку со статус кодом:
	// классификатору очереди нужен код, а не только текст
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}

		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Error != "" || errResp.Message != "") {
			apiErr.Message = errResp.Error
			if errResp.Message != "" {
				apiErr.Message = errResp.Message
			}
		} else {
			apiErr.Message = string(respBody)
		}

		return apiErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
