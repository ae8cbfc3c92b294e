package ghstore

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v66/github"
)

// Config defines GitHub contents store settings.
type Config struct {
	// Repository in "owner/repo" form.
	Repository string
	Token      string
	// BaseURL overrides the API base URL. Tests only.
	BaseURL    string
	HTTPClient *http.Client
}

// Client reads and writes versioned blobs through the GitHub Contents API.
// The blob sha acts as the version token: reads return it, conditional
// writes require it, and the API rejects writes made against a stale sha.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// Blob is a stored file plus the version token it was read at.
type Blob struct {
	Content []byte
	Version string
}

var (
	// ErrNotFound means the requested path does not exist upstream.
	ErrNotFound = errors.New("ghstore: not found")

	// ErrConflict means the expected version was stale, or a create raced
	// an existing file.
	ErrConflict = errors.New("ghstore: version conflict")
)
