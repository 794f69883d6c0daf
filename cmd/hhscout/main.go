package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/avoronova/hh-scout/internal/app"
	"github.com/avoronova/hh-scout/internal/config"
	storage "github.com/avoronova/hh-scout/internal/storage/postgres"
	"github.com/avoronova/hh-scout/pkg/logging"
	"github.com/avoronova/hh-scout/pkg/shutdown"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if err := storage.EnsureDatabase(ctx, storage.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		Database: cfg.DB.Name,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
	}); err != nil {
		logger.Error("failed to create database", "err", err)
		os.Exit(1)
	}

	res, err := app.InitializeResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	if err := storage.EnsureSchema(ctx, res.Pool); err != nil {
		logger.Error("failed to create tables", "err", err)
		os.Exit(1)
	}

	if err := res.Scheduler.Start(ctx); err != nil {
		logger.Error("failed to start background refresh", "err", err)
		os.Exit(1)
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		res,
		10*time.Second,
		logger,
	)

	logger.Info("collector initialized", "db", cfg.DB.Name, "employers", len(cfg.EmployerIDs))

	if err := res.Menu.Run(ctx); err != nil {
		logger.Error("console exited with error", "err", err)
	}
	_ = res.Shutdown(ctx)
}
