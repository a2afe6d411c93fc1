package sync

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/quartersapp/quarters/internal/client/api"
)

// classify определяет судьбу неудачной попытки доставки: повторять
// (transient) или удалить из очереди (permanent).
//
// Правила:
//   - сетевые сбои и таймауты - transient;
//   - типизированная ошибка сервера: 5xx, 408, 429 - transient,
//     остальные 4xx - permanent;
//   - неизвестные ошибки - transient, потолок попыток их ограничит.
func classify(err error) (transient bool, message string) {
	if err == nil {
		return false, ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true, "request timed out"
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true, "request timed out"
		}
		return true, fmt.Sprintf("network error: %s", netErr.Error())
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode >= 500:
			return true, apiErr.Error()
		case apiErr.StatusCode == http.StatusRequestTimeout,
			apiErr.StatusCode == http.StatusTooManyRequests:
			return true, apiErr.Error()
		default:
			return false, apiErr.Error()
		}
	}

	return true, err.Error()
}
