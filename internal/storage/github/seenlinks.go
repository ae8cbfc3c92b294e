package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/keturi/jobwatch/internal/domain"
	"github.com/keturi/jobwatch/internal/domain/digest"
	"github.com/keturi/jobwatch/pkg/ghstore"
)

// contentsClient describes the subset of the ghstore client used by the store.
type contentsClient interface {
	Get(ctx context.Context, path string) (ghstore.Blob, error)
	Put(ctx context.Context, path string, content []byte, expectedVersion, message string) (string, error)
}

// SeenLinkStore persists the seen-link set as a pretty-printed JSON string
// array in a repository file, using the blob sha as the version token.
type SeenLinkStore struct {
	client contentsClient
	path   string
	runID  string
	clock  func() time.Time
}

// NewSeenLinkStore builds a store bound to one file path.
func NewSeenLinkStore(client contentsClient, path, runID string) (*SeenLinkStore, error) {
	if client == nil {
		return nil, fmt.Errorf("seenlinks: client is required")
	}
	if path == "" {
		return nil, fmt.Errorf("seenlinks: path is required")
	}
	return &SeenLinkStore{client: client, path: path, runID: runID, clock: time.Now}, nil
}

// Fetch loads the persisted set. A missing file is an empty set, not an
// error; a file that does not decode to a JSON string array is a StoreError.
// Silently treating corruption as empty would re-mail every posting ever
// surfaced.
func (s *SeenLinkStore) Fetch(ctx context.Context) (domain.StateHandle, error) {
	blob, err := s.client.Get(ctx, s.path)
	if err != nil {
		if errors.Is(err, ghstore.ErrNotFound) {
			return domain.StateHandle{}, nil
		}
		return domain.StateHandle{}, &domain.StoreError{Op: "fetch " + s.path, Err: err}
	}

	var links []string
	if err := json.Unmarshal(blob.Content, &links); err != nil {
		return domain.StateHandle{}, &domain.StoreError{
			Op:  "fetch " + s.path,
			Err: fmt.Errorf("persisted blob is not a JSON string array: %w", err),
		}
	}

	return domain.StateHandle{SeenLinks: links, Version: blob.Version}, nil
}

// Put writes the full set back, sorted, conditioned on expectedVersion.
func (s *SeenLinkStore) Put(ctx context.Context, seenLinks []string, expectedVersion string) (string, error) {
	sorted := append([]string(nil), seenLinks...)
	sort.Strings(sorted)

	content, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return "", &domain.StoreError{Op: "encode " + s.path, Err: err}
	}

	message := fmt.Sprintf("Update seen links at %s (run %s)", s.clock().UTC().Format(time.RFC3339), s.runID)
	version, err := s.client.Put(ctx, s.path, content, expectedVersion, message)
	if err != nil {
		if errors.Is(err, ghstore.ErrConflict) {
			return "", &domain.ConflictError{Key: s.path, ExpectedVersion: expectedVersion, Err: err}
		}
		return "", &domain.StoreError{Op: "put " + s.path, Err: err}
	}

	return version, nil
}

var _ digest.StateStore = (*SeenLinkStore)(nil)
