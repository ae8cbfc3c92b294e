package googlecse

import (
	"context"
	"fmt"

	"github.com/keturi/jobwatch/internal/domain"
	"github.com/keturi/jobwatch/internal/domain/digest"
	"github.com/keturi/jobwatch/pkg/cse"
)

// searchClient describes the subset of the Custom Search client used by the
// provider.
type searchClient interface {
	Search(ctx context.Context, query string) ([]cse.Result, error)
}

// Provider implements digest.Provider using the Google Custom Search API
type Provider struct {
	client searchClient
}

// NewProvider builds a Custom Search provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("googlecse provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "googlecse"
}

// Search issues one query and returns postings in rank order
func (p *Provider) Search(ctx context.Context, query string) ([]domain.Posting, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("googlecse provider: client is nil")
	}

	results, err := p.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Posting, 0, len(results))
	for _, r := range results {
		if r.Link == "" {
			continue
		}
		out = append(out, domain.Posting{
			Title:       r.Title,
			Snippet:     r.Snippet,
			Link:        r.Link,
			SourceQuery: query,
		})
	}

	return out, nil
}

var _ digest.Provider = (*Provider)(nil)
