package digest

import (
	"context"

	"github.com/keturi/jobwatch/internal/domain"
)

// StateStore loads and persists the seen-link set with optimistic
// concurrency. Fetch returns an empty handle (empty version) when no state
// exists upstream; Put with an empty expected version is a pure create.
type StateStore interface {
	Fetch(ctx context.Context) (domain.StateHandle, error)

	// Put replaces the stored set and returns the new version token. The
	// write fails with domain.ConflictError if the remote version advanced
	// past expectedVersion since Fetch.
	Put(ctx context.Context, seenLinks []string, expectedVersion string) (string, error)
}
