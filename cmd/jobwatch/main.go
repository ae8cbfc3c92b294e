package main

import (
	"context"
	"errors"
	"log"
	"os"
	"syscall"

	"github.com/keturi/jobwatch/internal/app"
	"github.com/keturi/jobwatch/internal/config"
	"github.com/keturi/jobwatch/internal/domain"
	"github.com/keturi/jobwatch/pkg/logging"
	"github.com/keturi/jobwatch/pkg/shutdown"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitConfig   = 2
	exitStore    = 3
	exitConflict = 4
	exitNotify   = 5
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return exitConfig
	}

	runID := app.NewRunID()
	logger := logging.New(cfg.LogLevel).With("run_id", string(runID))
	defer func() { _ = logger.Sync() }()

	ctx, cancel := shutdown.Context(context.Background(), logger, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.InitializeApp(ctx, cfg, runID, logger)
	if err != nil {
		logger.Error("failed to initialize", "err", err)
		return exitFailure
	}

	logger.Info("starting run", "queries", len(cfg.Queries), "state_file", cfg.Store.Path)

	report, err := application.Run(ctx)
	if err != nil {
		logger.Error("run failed", "err", err, "notified", report.Notified)
		return exitCode(err)
	}

	logger.Info("run complete",
		"new_postings", len(report.NewPostings),
		"seen_total", report.SeenTotal,
		"notified", report.Notified,
	)
	return exitOK
}

// exitCode maps the error taxonomy to distinct codes so the external
// scheduler can tell a lost race from an unreachable store.
func exitCode(err error) int {
	var (
		conflictErr *domain.ConflictError
		notifyErr   *domain.NotifyError
		storeErr    *domain.StoreError
	)
	switch {
	case errors.As(err, &conflictErr):
		return exitConflict
	case errors.As(err, &notifyErr):
		return exitNotify
	case errors.As(err, &storeErr):
		return exitStore
	default:
		return exitFailure
	}
}
