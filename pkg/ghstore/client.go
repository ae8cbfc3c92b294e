package ghstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"
)

// NewClient instantiates a contents store client for one repository.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Repository == "" || cfg.Token == "" {
		return nil, fmt.Errorf("ghstore: repository and token are required")
	}

	owner, repo, ok := strings.Cut(cfg.Repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("ghstore: repository must be owner/repo, got %q", cfg.Repository)
	}

	gh := github.NewClient(cfg.HTTPClient).WithAuthToken(cfg.Token)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("ghstore: parse base url: %w", err)
		}
		gh.BaseURL = base
	}

	return &Client{gh: gh, owner: owner, repo: repo}, nil
}

// Get fetches the blob at path together with its version token.
// Returns ErrNotFound if the path does not exist.
func (c *Client) Get(ctx context.Context, path string) (Blob, error) {
	if c == nil || c.gh == nil {
		return Blob{}, fmt.Errorf("ghstore: client is nil")
	}

	file, _, resp, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return Blob{}, ErrNotFound
		}
		return Blob{}, fmt.Errorf("ghstore: get %s: %w", path, err)
	}
	if file == nil {
		return Blob{}, fmt.Errorf("ghstore: get %s: path is a directory", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return Blob{}, fmt.Errorf("ghstore: decode %s: %w", path, err)
	}

	return Blob{Content: []byte(content), Version: file.GetSHA()}, nil
}

// Put writes content to path. An empty expectedVersion is a pure create;
// otherwise the write carries the sha precondition and the API rejects it if
// the remote version advanced. Returns the new version token.
func (c *Client) Put(ctx context.Context, path string, content []byte, expectedVersion, message string) (string, error) {
	if c == nil || c.gh == nil {
		return "", fmt.Errorf("ghstore: client is nil")
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
	}

	var (
		res  *github.RepositoryContentResponse
		resp *github.Response
		err  error
	)
	if expectedVersion == "" {
		res, resp, err = c.gh.Repositories.CreateFile(ctx, c.owner, c.repo, path, opts)
	} else {
		opts.SHA = github.String(expectedVersion)
		res, resp, err = c.gh.Repositories.UpdateFile(ctx, c.owner, c.repo, path, opts)
	}
	if err != nil {
		if isConflict(resp, err) {
			return "", ErrConflict
		}
		return "", fmt.Errorf("ghstore: put %s: %w", path, err)
	}

	if res == nil || res.Content == nil {
		return "", fmt.Errorf("ghstore: put %s: response carried no content metadata", path)
	}
	return res.Content.GetSHA(), nil
}

// isConflict matches the two shapes the API uses for lost races: 409 for a
// stale sha on update, 422 for a create against an existing file.
func isConflict(resp *github.Response, err error) bool {
	if resp != nil {
		if resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity {
			return true
		}
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		code := ghErr.Response.StatusCode
		return code == http.StatusConflict || code == http.StatusUnprocessableEntity
	}
	return false
}
