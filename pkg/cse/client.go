package cse

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const (
	defaultMaxResults = 10
	// The API serves at most 10 results per page.
	maxResultsCap = 10
)

// NewClient instantiates a Google Custom Search client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.EngineID == "" {
		return nil, fmt.Errorf("cse: api_key and engine_id are required")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > maxResultsCap {
		maxResults = maxResultsCap
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cse: failed to create service: %w", err)
	}

	return &Client{
		svc:        svc,
		engineID:   cfg.EngineID,
		maxResults: maxResults,
		timeout:    cfg.Timeout,
	}, nil
}

// Search issues a single search call and returns the first result page.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if c == nil || c.svc == nil {
		return nil, fmt.Errorf("cse: client is nil")
	}
	if query == "" {
		return nil, fmt.Errorf("cse: query is required")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.svc.Cse.List().
		Cx(c.engineID).
		Q(query).
		Start(1).
		Num(c.maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("cse: search %q: %w", query, err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link == "" {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}

	return results, nil
}
