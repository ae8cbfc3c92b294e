package digest

import (
	"context"

	"github.com/keturi/jobwatch/internal/domain"
)

// Provider represents an external search source for job postings.
type Provider interface {
	// e.g. "googlecse"
	Name() string

	// Search returns one page of ranked postings for a query.
	Search(ctx context.Context, query string) ([]domain.Posting, error)
}
