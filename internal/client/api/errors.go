package api

import "fmt"

// Error представляет ошибку уровня HTTP от сервера.
// Сохраняет статус код, чтобы классификатор синхронизации мог отличить
// временные сбои (5xx, 408, 429) от постоянных (прочие 4xx).
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsServerError сообщает, относится ли ошибка к классу 5xx
func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500
}
