// Package cli реализует команды клиента Quarters.
//
// Каждая команда - метод runX на Cli, диспетчеризуемый из Run.
// Терминальный ввод-вывод идет через iocli.IO, сервисы подключаются
// через интерфейсы: тесты подставляют моки и проверяют вывод.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/quartersapp/quarters/internal/client/auth"
	"github.com/quartersapp/quarters/internal/client/connectivity"
	"github.com/quartersapp/quarters/internal/client/iocli"
	"github.com/quartersapp/quarters/internal/client/sync"
)

// passwordEnvVar переменная окружения с паролем для
// неинтерактивных запусков (скрипты, обертка companion-приложения)
const passwordEnvVar = "QUARTERS_PASSWORD"

// Passwords неинтерактивные источники пароля, заполняются из флагов
type Passwords struct {
	FromFile string
	FromArgs string
}

// Cli выполняет команды клиента
type Cli struct {
	io           iocli.IO
	authService  auth.Service
	syncService  sync.Service
	connectivity connectivity.Monitor
	passwords    Passwords
}

// New создает CLI с переданными зависимостями
func New(
	io iocli.IO,
	authService auth.Service,
	syncService sync.Service,
	monitor connectivity.Monitor,
	passwords Passwords,
) *Cli {
	return &Cli{
		io:           io,
		authService:  authService,
		syncService:  syncService,
		connectivity: monitor,
		passwords:    passwords,
	}
}

// getPassword возвращает пароль по приоритету источников:
// 1. Переменная окружения QUARTERS_PASSWORD
// 2. Файл из --password-file
// 3. Значение флага --password
// 4. Интерактивный запрос
func (c *Cli) getPassword(prompt string) (string, error) {
	if password := os.Getenv(passwordEnvVar); password != "" {
		return password, nil
	}

	if c.passwords.FromFile != "" {
		data, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(data))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

func PrintUsage() {
	fmt.Println("Quarters Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  quarters [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version              Show version information")
	fmt.Println("  --server URL           Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH              Path to local database (default: quarters-client.db)")
	fmt.Println("  --password PASSWORD    Account password (not recommended, use env var or file)")
	fmt.Println("  --password-file PATH   Path to file containing account password")
	fmt.Println()
	fmt.Println("Password Priority (highest to lowest):")
	fmt.Println("  1. QUARTERS_PASSWORD environment variable")
	fmt.Println("  2. --password-file (file path)")
	fmt.Println("  3. --password (command line)")
	fmt.Println("  4. Interactive prompt (fallback)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register               Register new player")
	fmt.Println("  login                  Login and save session")
	fmt.Println("  logout                 Delete local session")
	fmt.Println("  status                 Show session and sync status")
	fmt.Println("  start                  Start a new round")
	fmt.Println("  score <game-id>        Record scores for the current hole")
	fmt.Println("  finalize <game-id>     Finalize a round and settle quarters")
	fmt.Println("  games [game-id]        List local rounds or show one round")
	fmt.Println("  sync                   Push pending changes to the server")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  quarters register")
	fmt.Println("  quarters login")
	fmt.Println("  quarters start")
	fmt.Println("  quarters score 7d8e2c1a-5b4f-4c3d-9e8f-1a2b3c4d5e6f")
	fmt.Println("  quarters sync")
	fmt.Println()
	fmt.Println("  # Non-interactive login (for scripts)")
	fmt.Println("  export QUARTERS_PASSWORD='correct-horse-battery'")
	fmt.Println("  quarters login")
}
