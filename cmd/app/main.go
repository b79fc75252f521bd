package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-task-tracker/config"
	"personal-task-tracker/internal/task/delivery/tui"
	fileRepo "personal-task-tracker/internal/task/repository/file"
	"personal-task-tracker/internal/task/usecase"
	"personal-task-tracker/pkg/datemath"
	"personal-task-tracker/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		File:         cfg.Logger.File,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting personal task tracker...")
	logger.Infof(ctx, "Task document: %s", cfg.Storage.Path)

	// 3. Deadline expression parser
	dateParser, err := datemath.NewParser(cfg.Tasks.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Tasks.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 4. Task repository
	taskRepo, err := fileRepo.New(cfg.Storage.Path, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to set up task storage:", err)
		os.Exit(1)
	}

	// 5. Task store
	taskUC := usecase.New(logger, taskRepo, cfg.Search.CacheSize, cfg.Search.CacheTTL)

	// 6. Terminal interface
	ui := tui.New(logger, taskUC, dateParser)
	if err := ui.Run(ctx); err != nil {
		logger.Errorf(ctx, "TUI exited with error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Info(ctx, "Shutdown complete")
}
