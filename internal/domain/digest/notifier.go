package digest

import "context"

// Notifier delivers one digest message. A single atomic send, no retry.
type Notifier interface {
	Notify(ctx context.Context, subject, htmlBody, textBody string) error
}
