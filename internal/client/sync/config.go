package sync

import "time"

// Config задает параметры координатора синхронизации
type Config struct {
	// BaseDelay - начальная задержка экспоненциального backoff
	BaseDelay time.Duration
	// MaxDelay - потолок задержки между повторами
	MaxDelay time.Duration
	// ReconnectDelay - пауза перед проходом после восстановления связи
	ReconnectDelay time.Duration
	// DebounceDelay - окно группировки быстрых правок в один проход
	DebounceDelay time.Duration
	// MaxAttempts - потолок попыток доставки одной мутации
	MaxAttempts int
	// ErrorBufferSize - число хранимых последних ошибок синхронизации
	ErrorBufferSize int
}

// DefaultConfig возвращает конфигурацию координатора по умолчанию
func DefaultConfig() Config {
	return Config{
		BaseDelay:       2 * time.Second,
		MaxDelay:        60 * time.Second,
		ReconnectDelay:  500 * time.Millisecond,
		DebounceDelay:   300 * time.Millisecond,
		MaxAttempts:     5,
		ErrorBufferSize: 10,
	}
}
