// Package config загружает конфигурацию сервера из окружения.
// Значения читаются из переменных окружения, .env файл подхватывается
// автоматически, если присутствует рядом с бинарником.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config объединяет все настройки сервера.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

// ServerConfig содержит параметры HTTP-листенера.
type ServerConfig struct {
	Host string
	Port string
}

// Addr возвращает адрес для http.Server в формате host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// DatabaseConfig содержит путь к файлу SQLite.
type DatabaseConfig struct {
	Path string
}

// JWTConfig содержит секрет подписи и время жизни access-токена.
type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

// RateLimitConfig содержит параметры ограничения частоты запросов.
// Клиент трактует 429 как временную ошибку и повторяет запрос,
// поэтому limiter может быть агрессивным без потери мутаций.
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	Enabled           bool
}

// LoggingConfig содержит уровень логирования.
type LoggingConfig struct {
	Level string
}

// Load читает конфигурацию из окружения. Отсутствующие переменные
// получают значения по умолчанию, пригодные для локальной разработки.
func Load() (*Config, error) {
	godotenv.Load()

	tokenTTL, err := time.ParseDuration(getEnv("ACCESS_TOKEN_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "quarters.db"),
		},
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
			AccessTokenTTL: tokenTTL,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 60),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
			Enabled:           getEnvAsBool("RATE_LIMIT_ENABLED", true),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
