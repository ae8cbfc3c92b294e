package digest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/keturi/jobwatch/internal/domain"
	"github.com/keturi/jobwatch/pkg/logging"
)

type Service interface {
	Run(ctx context.Context) (Report, error)
}

// Report summarizes one reconciliation run.
type Report struct {
	NewPostings []domain.Posting
	SeenTotal   int
	Notified    bool
	Version     string
}

// Option configures Service
type Option func(*config)

type config struct {
	providers []Provider
	store     StateStore
	notifier  Notifier
	queries   []string
	clock     func() time.Time
	log       *logging.Logger
}

// WithProviders sets search providers
func WithProviders(providers ...Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

// WithStore sets the state store
func WithStore(store StateStore) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithNotifier sets the notifier
func WithNotifier(notifier Notifier) Option {
	return func(c *config) {
		c.notifier = notifier
	}
}

// WithQueries sets the fixed, ordered query list
func WithQueries(queries ...string) Option {
	return func(c *config) {
		c.queries = queries
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger sets the run logger
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.store == nil {
		return nil, fmt.Errorf("digest.Service: state store is required")
	}
	if cfg.notifier == nil {
		return nil, fmt.Errorf("digest.Service: notifier is required")
	}
	if len(cfg.providers) == 0 {
		return nil, fmt.Errorf("digest.Service: at least one provider is required")
	}
	if len(cfg.queries) == 0 {
		return nil, fmt.Errorf("digest.Service: at least one query is required")
	}

	return &service{
		providers: cfg.providers,
		store:     cfg.store,
		notifier:  cfg.notifier,
		queries:   cfg.queries,
		clock:     cfg.clock,
		log:       cfg.log,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(store StateStore, providers []Provider, notifier Notifier, queries []string, log *logging.Logger) (Service, error) {
	return NewService(
		WithStore(store),
		WithProviders(providers...),
		WithNotifier(notifier),
		WithQueries(queries...),
		WithLogger(log),
	)
}

type service struct {
	providers []Provider
	store     StateStore
	notifier  Notifier
	queries   []string
	clock     func() time.Time
	log       *logging.Logger
}

// Run executes one reconciliation pass: load state, search, dedupe, notify,
// persist. Notification happens before the write on purpose: a failed send
// leaves the store untouched so the same postings are rediscovered next run,
// while a failed write after a sent mail risks at worst a duplicate mail.
func (s *service) Run(ctx context.Context) (Report, error) {
	handle, err := s.store.Fetch(ctx)
	if err != nil {
		return Report{}, err
	}

	seen := handle.Seen()
	s.log.Info("state loaded", "seen_links", len(seen), "version", handle.Version)

	var (
		newPostings []domain.Posting
		newLinks    []string
		searchErrs  []error
		searches    int
	)

	for _, query := range s.queries {
		for _, p := range s.providers {
			searches++
			postings, err := p.Search(ctx, query)
			if err != nil {
				perr := &domain.ProviderError{Provider: p.Name(), Query: query, Err: err}
				s.log.Warn("search failed, treating query results as empty", "provider", p.Name(), "query", query, "err", err)
				searchErrs = append(searchErrs, perr)
				continue
			}

			for _, posting := range postings {
				if posting.Link == "" {
					continue
				}
				if _, ok := seen[posting.Link]; ok {
					continue
				}
				seen[posting.Link] = struct{}{}
				newPostings = append(newPostings, posting)
				newLinks = append(newLinks, posting.Link)
			}
		}
	}

	// Partial failure is tolerated; every search failing is not.
	if len(searchErrs) == searches {
		return Report{}, fmt.Errorf("all %d searches failed: %w", searches, errors.Join(searchErrs...))
	}

	report := Report{
		NewPostings: newPostings,
		SeenTotal:   len(seen),
		Version:     handle.Version,
	}

	if len(newPostings) == 0 {
		s.log.Info("no new postings, leaving store untouched")
		return report, nil
	}

	now := s.clock()
	subject := Subject(now, len(newPostings))
	htmlBody, textBody, err := Render(newPostings, now)
	if err != nil {
		return report, fmt.Errorf("render digest: %w", err)
	}

	if err := s.notifier.Notify(ctx, subject, htmlBody, textBody); err != nil {
		return report, err
	}
	report.Notified = true
	s.log.Info("digest sent", "new_postings", len(newPostings))

	version, err := s.store.Put(ctx, append(handle.SeenLinks, newLinks...), handle.Version)
	if err != nil {
		return report, err
	}
	report.Version = version
	s.log.Info("state persisted", "seen_links", len(seen), "version", version)

	return report, nil
}
