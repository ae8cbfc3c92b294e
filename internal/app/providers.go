package app

import (
	"net/http"

	"github.com/keturi/jobwatch/internal/config"
	"github.com/keturi/jobwatch/internal/domain/digest"
	"github.com/keturi/jobwatch/internal/domain/digest/providers/googlecse"
	"github.com/keturi/jobwatch/internal/notify"
	githubstore "github.com/keturi/jobwatch/internal/storage/github"
	"github.com/keturi/jobwatch/pkg/cse"
	"github.com/keturi/jobwatch/pkg/ghstore"
	"github.com/keturi/jobwatch/pkg/logging"
)

// provideHTTPClient bounds every store call with the configured timeout
func provideHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}

// provideCSEConfig extracts Custom Search config from main config
func provideCSEConfig(cfg config.Config) cse.Config {
	return cse.Config{
		APIKey:     cfg.Search.APIKey,
		EngineID:   cfg.Search.EngineID,
		MaxResults: cfg.Search.MaxResults,
		Timeout:    cfg.HTTPTimeout,
	}
}

// provideGHStoreConfig extracts contents store config from main config
func provideGHStoreConfig(cfg config.Config, httpClient *http.Client) ghstore.Config {
	return ghstore.Config{
		Repository: cfg.Store.Repository,
		Token:      cfg.Store.Token,
		HTTPClient: httpClient,
	}
}

// provideSeenLinkStore binds the store client to the configured state file
func provideSeenLinkStore(client *ghstore.Client, cfg config.Config, runID RunID) (*githubstore.SeenLinkStore, error) {
	return githubstore.NewSeenLinkStore(client, cfg.Store.Path, string(runID))
}

// provideSearchProvider creates a Custom Search provider from the client
func provideSearchProvider(client *cse.Client) (*googlecse.Provider, error) {
	return googlecse.NewProvider(client)
}

// provideProviders creates the slice of digest providers
func provideProviders(p *googlecse.Provider) []digest.Provider {
	return []digest.Provider{p}
}

// provideNotifier builds the email notifier with transport precedence
func provideNotifier(cfg config.Config, log *logging.Logger) (*notify.EmailNotifier, error) {
	return notify.New(cfg, log)
}

// provideQueries extracts the fixed query list from main config
func provideQueries(cfg config.Config) []string {
	return cfg.Queries
}
