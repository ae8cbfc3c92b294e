package domain

// Posting is a single search result surfaced to the recipient.
// Identity is the Link string, compared exactly with no normalization.
type Posting struct {
	Title       string
	Snippet     string
	Link        string
	SourceQuery string
}

// StateHandle is the persisted deduplication state as read from the store.
// An empty Version means no prior state exists upstream and the next write
// must be a create rather than a conditional update.
type StateHandle struct {
	SeenLinks []string
	Version   string
}

// Seen builds the membership set for the handle's links.
func (h StateHandle) Seen() map[string]struct{} {
	seen := make(map[string]struct{}, len(h.SeenLinks))
	for _, link := range h.SeenLinks {
		seen[link] = struct{}{}
	}
	return seen
}
