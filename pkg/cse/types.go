package cse

import (
	"time"

	"google.golang.org/api/customsearch/v1"
)

// Config defines Custom Search client settings.
type Config struct {
	APIKey   string
	EngineID string
	// MaxResults per page, capped at 10 by the API. Defaults to 10.
	MaxResults int64
	// Timeout bounds each Search call. Zero means no bound beyond ctx.
	Timeout time.Duration
	// Endpoint overrides the API base URL. Tests only.
	Endpoint string
}

// Client queries the Google Custom Search JSON API.
type Client struct {
	svc        *customsearch.Service
	engineID   string
	maxResults int64
	timeout    time.Duration
}

// Result is one ranked search hit.
type Result struct {
	Title   string
	Link    string
	Snippet string
}
