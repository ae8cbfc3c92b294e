package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/keturi/jobwatch/internal/domain/digest"
	"github.com/keturi/jobwatch/pkg/logging"
)

// RunID tags one batch invocation; it appears in logs and in the state
// file's commit message.
type RunID string

// NewRunID generates a fresh run identifier.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

// App is the fully wired batch job.
type App struct {
	Digest digest.Service
	Log    *logging.Logger
}

func newApp(svc digest.Service, log *logging.Logger) *App {
	return &App{Digest: svc, Log: log}
}

// Run executes a single reconciliation pass.
func (a *App) Run(ctx context.Context) (digest.Report, error) {
	return a.Digest.Run(ctx)
}
