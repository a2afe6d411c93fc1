package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/quartersapp/quarters/internal/client/api"
	"github.com/quartersapp/quarters/internal/client/auth"
	"github.com/quartersapp/quarters/internal/client/cli"
	"github.com/quartersapp/quarters/internal/client/connectivity"
	"github.com/quartersapp/quarters/internal/client/iocli"
	"github.com/quartersapp/quarters/internal/client/queue"
	"github.com/quartersapp/quarters/internal/client/snapshot"
	"github.com/quartersapp/quarters/internal/client/storage/boltdb"
	"github.com/quartersapp/quarters/internal/client/sync"
	"github.com/quartersapp/quarters/internal/merge"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "quarters-client.db", "Path to local database")
	password := flag.String("password", "", "Account password (prefer QUARTERS_PASSWORD or --password-file)")
	passwordFile := flag.String("password-file", "", "Path to file containing account password")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// По умолчанию клиент пишет только предупреждения, чтобы логи
	// синхронизации не мешали выводу команд. QUARTERS_DEBUG=1 включает
	// подробные логи.
	logger := newLogger()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(*serverURL)
	clock := clockwork.NewRealClock()

	// Монитор связи: синхронный probe до выполнения команды, чтобы
	// SyncMutation сразу знал, доступен ли сервер. Дальше состояние
	// поддерживает фоновый poller.
	monitor := connectivity.NewPoller(apiClient, clock, logger, connectivity.DefaultProbeInterval)
	monitor.SetOnline(apiClient.Health(ctx) == nil)
	if err := monitor.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start connectivity monitor: %v\n", err)
		os.Exit(1)
	}
	defer monitor.Stop()

	// Собираем сервисы клиента
	queueStore := queue.NewStore(boltStorage, merge.NewPolicy(), clock, logger)
	snapshots := snapshot.NewService(boltStorage, clock, logger)
	authService := auth.NewService(apiClient, boltStorage, clock, logger)
	syncService := sync.NewService(
		apiClient,
		queueStore,
		snapshots,
		boltStorage,
		boltStorage,
		monitor,
		clock,
		sync.DefaultConfig(),
		logger,
	)

	if err := syncService.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start sync service: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := syncService.Close(); err != nil {
			logger.Error("failed to stop sync service", "error", err)
		}
	}()

	c := cli.New(
		iocli.NewStdio(),
		authService,
		syncService,
		monitor,
		cli.Passwords{
			FromFile: *passwordFile,
			FromArgs: *password,
		},
	)

	// Выполняем команду
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("QUARTERS_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func printVersion() {
	fmt.Printf("Quarters Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
