package github

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keturi/jobwatch/internal/domain"
	"github.com/keturi/jobwatch/pkg/ghstore"
)

type fakeContentsClient struct {
	blob   ghstore.Blob
	getErr error
	putErr error

	gotPath       string
	gotContent    []byte
	gotVersion    string
	gotMessage    string
	putNewVersion string
}

func (f *fakeContentsClient) Get(_ context.Context, path string) (ghstore.Blob, error) {
	f.gotPath = path
	return f.blob, f.getErr
}

func (f *fakeContentsClient) Put(_ context.Context, path string, content []byte, expectedVersion, message string) (string, error) {
	f.gotPath = path
	f.gotContent = content
	f.gotVersion = expectedVersion
	f.gotMessage = message
	if f.putErr != nil {
		return "", f.putErr
	}
	return f.putNewVersion, nil
}

func TestFetch(t *testing.T) {
	client := &fakeContentsClient{blob: ghstore.Blob{
		Content: []byte(`["https://a.com/job1","https://a.com/job2"]`),
		Version: "sha-1",
	}}
	store, err := NewSeenLinkStore(client, "seen_links.json", "run-1")
	require.NoError(t, err)

	handle, err := store.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.com/job1", "https://a.com/job2"}, handle.SeenLinks)
	assert.Equal(t, "sha-1", handle.Version)
}

func TestFetchNotFoundIsEmpty(t *testing.T) {
	client := &fakeContentsClient{getErr: ghstore.ErrNotFound}
	store, err := NewSeenLinkStore(client, "seen_links.json", "run-1")
	require.NoError(t, err)

	handle, err := store.Fetch(context.Background())
	require.NoError(t, err, "a missing file is the first-run state, not an error")
	assert.Empty(t, handle.SeenLinks)
	assert.Empty(t, handle.Version)
}

func TestFetchMalformedBlobFailsLoudly(t *testing.T) {
	cases := []string{
		`{"not":"an array"}`,
		`not json at all`,
		`[1,2,3]`,
	}

	for _, blob := range cases {
		client := &fakeContentsClient{blob: ghstore.Blob{Content: []byte(blob), Version: "sha-1"}}
		store, err := NewSeenLinkStore(client, "seen_links.json", "run-1")
		require.NoError(t, err)

		_, err = store.Fetch(context.Background())
		var storeErr *domain.StoreError
		require.ErrorAs(t, err, &storeErr, "blob %q must not silently reset the seen set", blob)
	}
}

func TestFetchTransportError(t *testing.T) {
	client := &fakeContentsClient{getErr: errors.New("503 upstream")}
	store, err := NewSeenLinkStore(client, "seen_links.json", "run-1")
	require.NoError(t, err)

	_, err = store.Fetch(context.Background())
	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
}

func TestPutWritesSortedPrettyJSON(t *testing.T) {
	client := &fakeContentsClient{putNewVersion: "sha-2"}
	store, err := NewSeenLinkStore(client, "seen_links.json", "run-1")
	require.NoError(t, err)

	version, err := store.Put(context.Background(), []string{"https://z.com/1", "https://a.com/2"}, "sha-1")
	require.NoError(t, err)
	assert.Equal(t, "sha-2", version)
	assert.Equal(t, "sha-1", client.gotVersion)
	assert.Contains(t, client.gotMessage, "run-1")

	var links []string
	require.NoError(t, json.Unmarshal(client.gotContent, &links))
	assert.Equal(t, []string{"https://a.com/2", "https://z.com/1"}, links, "persisted set is sorted")
	assert.Contains(t, string(client.gotContent), "\n  ", "pretty-printed with two-space indent")
}

func TestPutConflict(t *testing.T) {
	client := &fakeContentsClient{putErr: ghstore.ErrConflict}
	store, err := NewSeenLinkStore(client, "seen_links.json", "run-1")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), []string{"https://a.com/1"}, "stale-sha")
	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "stale-sha", conflictErr.ExpectedVersion)
}

func TestPutTransportError(t *testing.T) {
	client := &fakeContentsClient{putErr: errors.New("500 upstream")}
	store, err := NewSeenLinkStore(client, "seen_links.json", "run-1")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), []string{"https://a.com/1"}, "sha-1")
	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
}

func TestNewSeenLinkStoreValidation(t *testing.T) {
	_, err := NewSeenLinkStore(nil, "seen_links.json", "run-1")
	require.Error(t, err)

	_, err = NewSeenLinkStore(&fakeContentsClient{}, "", "run-1")
	require.Error(t, err)
}
