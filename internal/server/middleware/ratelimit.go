package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// cleanupInterval период очистки неактивных клиентов
	cleanupInterval = 3 * time.Minute
	// idleTimeout таймаут, после которого клиент считается неактивным
	idleTimeout = 10 * time.Minute
)

// RateLimiter ограничивает частоту запросов по ключу (обычно IP адрес).
// Каждому ключу соответствует свой токен-бакет golang.org/x/time/rate
type RateLimiter struct {
	limiters map[string]*clientLimiter
	logger   *slog.Logger
	cleanupC chan struct{}
	rps      rate.Limit
	burst    int
	mu       sync.Mutex
}

// clientLimiter токен-бакет одного клиента
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает новый rate limiter.
// requestsPerMinute - устойчивая частота, burst - допустимый всплеск
func NewRateLimiter(requestsPerMinute, burst int, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		logger:   logger,
		cleanupC: make(chan struct{}),
		rps:      rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
	}

	// Запускаем периодическую очистку неактивных клиентов
	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет неактивные limiters для экономии памяти
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.removeIdle()
		case <-rl.cleanupC:
			return
		}
	}
}

// removeIdle удаляет клиентов, не присылавших запросы дольше idleTimeout
func (rl *RateLimiter) removeIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) > idleTimeout {
			delete(rl.limiters, key)
		}
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.cleanupC)
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	cl, exists := rl.limiters[key]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = time.Now()
	rl.mu.Unlock()

	return cl.limiter.Allow()
}

// RateLimitMiddleware создает middleware для ограничения частоты запросов.
// Ответ 429 клиентская очередь классифицирует как временную ошибку:
// мутация остается в очереди и уходит со следующим проходом
func RateLimitMiddleware(requestsPerMinute, burst int, logger *slog.Logger) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(requestsPerMinute, burst, logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Используем IP адрес как ключ
			key := getClientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded, please try again later"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	// Проверяем X-Forwarded-For (для прокси/load balancers)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Берем первый IP из списка (реальный клиент)
		for idx := 0; idx < len(xff); idx++ {
			if xff[idx] == ',' {
				return xff[:idx]
			}
		}
		return xff
	}

	// Проверяем X-Real-IP
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Используем RemoteAddr
	return r.RemoteAddr
}
