package googlecse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keturi/jobwatch/pkg/cse"
)

type fakeSearchClient struct {
	results []cse.Result
	err     error
	query   string
}

func (f *fakeSearchClient) Search(_ context.Context, query string) ([]cse.Result, error) {
	f.query = query
	return f.results, f.err
}

func TestNewProviderRequiresClient(t *testing.T) {
	_, err := NewProvider(nil)
	require.Error(t, err)
}

func TestSearchMapsResults(t *testing.T) {
	client := &fakeSearchClient{results: []cse.Result{
		{Title: "Junior Analyst", Link: "https://a.com/job1", Snippet: "Seed startup"},
		{Title: "No link", Snippet: "dropped"},
	}}
	p, err := NewProvider(client)
	require.NoError(t, err)

	postings, err := p.Search(context.Background(), "junior analyst")
	require.NoError(t, err)
	assert.Equal(t, "junior analyst", client.query)

	require.Len(t, postings, 1)
	assert.Equal(t, "Junior Analyst", postings[0].Title)
	assert.Equal(t, "https://a.com/job1", postings[0].Link)
	assert.Equal(t, "Seed startup", postings[0].Snippet)
	assert.Equal(t, "junior analyst", postings[0].SourceQuery)
}

func TestSearchPropagatesError(t *testing.T) {
	client := &fakeSearchClient{err: errors.New("quota exceeded")}
	p, err := NewProvider(client)
	require.NoError(t, err)

	_, err = p.Search(context.Background(), "anything")
	require.ErrorContains(t, err, "quota exceeded")
}
