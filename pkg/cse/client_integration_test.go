package cse

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestSearchIntegration(t *testing.T) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	engineID := os.Getenv("GOOGLE_CSE_ID")

	if apiKey == "" || engineID == "" {
		t.Skip("GOOGLE_API_KEY and GOOGLE_CSE_ID must be set to run this test")
	}

	client, err := NewClient(context.Background(), Config{
		APIKey:   apiKey,
		EngineID: engineID,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := client.Search(ctx, "junior software engineer")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) == 0 {
		t.Log("search returned zero results; check engine configuration")
		return
	}

	for i, r := range results {
		if i >= 5 {
			break
		}
		t.Logf("Result %d: %s (%s)", i+1, r.Title, r.Link)
	}
	t.Logf("search returned %d results", len(results))
}
