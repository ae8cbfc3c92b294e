package digest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keturi/jobwatch/internal/domain"
	"github.com/keturi/jobwatch/internal/domain/digest"
)

func TestSubject(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Job search digest 2026-08-30: 3 new", digest.Subject(now, 3))
}

func TestRenderBodies(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	postings := []domain.Posting{
		{Title: "Junior Data Analyst", Snippet: "Early-stage startup", Link: "https://a.com/job1", SourceQuery: "q1"},
		{Title: "Software Engineer", Snippet: "Seed round", Link: "https://b.com/job2", SourceQuery: "q2"},
	}

	htmlBody, textBody, err := digest.Render(postings, now)
	require.NoError(t, err)

	assert.Contains(t, htmlBody, "Job search results for 2026-08-30")
	assert.Contains(t, htmlBody, `<a href="https://a.com/job1" target="_blank">`)
	assert.Contains(t, htmlBody, "<strong>Junior Data Analyst</strong>")
	assert.Contains(t, htmlBody, "query: q2")

	assert.Contains(t, textBody, "2 new result(s) for 2026-08-30")
	assert.Contains(t, textBody, "https://b.com/job2")
	assert.Contains(t, textBody, "query: q1")
}

func TestRenderEscapesHTML(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	postings := []domain.Posting{
		{Title: "<script>alert(1)</script>", Snippet: "a & b", Link: "https://a.com/job1", SourceQuery: "q"},
	}

	htmlBody, _, err := digest.Render(postings, now)
	require.NoError(t, err)

	assert.NotContains(t, htmlBody, "<script>")
	assert.Contains(t, htmlBody, "&lt;script&gt;")
}

func TestRenderEmpty(t *testing.T) {
	htmlBody, _, err := digest.Render(nil, time.Now())
	require.NoError(t, err)
	assert.Contains(t, htmlBody, "No new results.")
}
