//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/keturi/jobwatch/internal/config"
	"github.com/keturi/jobwatch/internal/domain/digest"
	"github.com/keturi/jobwatch/internal/notify"
	githubstore "github.com/keturi/jobwatch/internal/storage/github"
	"github.com/keturi/jobwatch/pkg/cse"
	"github.com/keturi/jobwatch/pkg/ghstore"
	"github.com/keturi/jobwatch/pkg/logging"
)

// InitializeApp creates the App with all components wired up
func InitializeApp(ctx context.Context, cfg config.Config, runID RunID, log *logging.Logger) (*App, error) {
	wire.Build(
		// Infrastructure - Custom Search
		provideCSEConfig,
		cse.NewClient,

		// Infrastructure - contents store
		provideHTTPClient,
		provideGHStoreConfig,
		ghstore.NewClient,

		// State store
		provideSeenLinkStore,
		wire.Bind(new(digest.StateStore), new(*githubstore.SeenLinkStore)),

		// Providers
		provideSearchProvider,
		provideProviders,

		// Notifier
		provideNotifier,
		wire.Bind(new(digest.Notifier), new(*notify.EmailNotifier)),

		// Service
		provideQueries,
		digest.NewServiceWithDeps,

		newApp,
	)

	return &App{}, nil
}
