package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default query list; override with SEARCH_QUERIES (newline-separated).
var defaultQueries = []string{
	`("entry level" OR "junior") "data analyst" ("startup" OR "early-stage" OR "seed")`,
	`("entry level" OR "junior") "software engineer" ("startup" OR "early-stage" OR "seed")`,
}

const (
	defaultStatePath   = "seen_links.json"
	defaultMaxResults  = 10
	defaultSMTPPort    = 587
	defaultHTTPTimeout = 30 * time.Second
	defaultLogLevel    = "info"
)

// Config contains runtime settings for one jobwatch run. Built once at
// process start and passed explicitly; nothing reads the environment later.
type Config struct {
	LogLevel string
	Queries  []string

	// Per-call bound for every outbound HTTP request.
	HTTPTimeout time.Duration

	Search struct {
		APIKey     string
		EngineID   string
		MaxResults int64
	}

	Store struct {
		Repository string // owner/repo
		Token      string
		Path       string
	}

	Mail struct {
		From string
		To   string

		// SendGrid takes precedence over SMTP when its key is set.
		SendGridAPIKey string

		SMTPHost string
		SMTPPort int
		SMTPUser string
		SMTPPass string
	}
}

// SendGridEnabled reports which mail transport the run will use.
func (c Config) SendGridEnabled() bool {
	return c.Mail.SendGridAPIKey != ""
}

// MissingVarsError lists required environment variables that were absent.
type MissingVarsError struct {
	Vars []string
}

func (e *MissingVarsError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Vars, ", "))
}

// Load populates config from environment variables.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:    defaultLogLevel,
		Queries:     defaultQueries,
		HTTPTimeout: defaultHTTPTimeout,
	}
	cfg.Search.MaxResults = defaultMaxResults
	cfg.Store.Path = defaultStatePath
	cfg.Mail.SMTPPort = defaultSMTPPort

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("SEARCH_QUERIES"); v != "" {
		cfg.Queries = splitQueries(v)
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}

	cfg.Search.APIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.Search.EngineID = os.Getenv("GOOGLE_CSE_ID")
	if v := os.Getenv("MAX_RESULTS_PER_QUERY"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid MAX_RESULTS_PER_QUERY %q", v)
		}
		cfg.Search.MaxResults = n
	}

	cfg.Store.Repository = os.Getenv("GITHUB_REPOSITORY")
	cfg.Store.Token = os.Getenv("GITHUB_TOKEN")
	if v := os.Getenv("STATE_FILE_PATH"); v != "" {
		cfg.Store.Path = v
	}

	cfg.Mail.From = os.Getenv("FROM_EMAIL")
	cfg.Mail.To = os.Getenv("TO_EMAIL")
	cfg.Mail.SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	cfg.Mail.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Mail.SMTPUser = os.Getenv("SMTP_USER")
	cfg.Mail.SMTPPass = os.Getenv("SMTP_PASS")
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 {
			return cfg, fmt.Errorf("invalid SMTP_PORT %q", v)
		}
		cfg.Mail.SMTPPort = p
	}

	var missingVars []string

	if cfg.Search.APIKey == "" {
		missingVars = append(missingVars, "GOOGLE_API_KEY")
	}
	if cfg.Search.EngineID == "" {
		missingVars = append(missingVars, "GOOGLE_CSE_ID")
	}
	if cfg.Store.Repository == "" {
		missingVars = append(missingVars, "GITHUB_REPOSITORY")
	}
	if cfg.Store.Token == "" {
		missingVars = append(missingVars, "GITHUB_TOKEN")
	}
	if cfg.Mail.From == "" {
		missingVars = append(missingVars, "FROM_EMAIL")
	}
	if cfg.Mail.To == "" {
		missingVars = append(missingVars, "TO_EMAIL")
	}

	// SMTP settings only become required once SendGrid is not configured.
	if !cfg.SendGridEnabled() {
		if cfg.Mail.SMTPHost == "" {
			missingVars = append(missingVars, "SMTP_HOST")
		}
		if cfg.Mail.SMTPUser == "" {
			missingVars = append(missingVars, "SMTP_USER")
		}
		if cfg.Mail.SMTPPass == "" {
			missingVars = append(missingVars, "SMTP_PASS")
		}
	}

	if len(missingVars) > 0 {
		return cfg, &MissingVarsError{Vars: missingVars}
	}

	return cfg, nil
}

func splitQueries(v string) []string {
	var queries []string
	for _, line := range strings.Split(v, "\n") {
		if q := strings.TrimSpace(line); q != "" {
			queries = append(queries, q)
		}
	}
	return queries
}
