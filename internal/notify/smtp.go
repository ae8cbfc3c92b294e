package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// smtpTransport sends a multipart message (plain text plus HTML alternative)
// through an authenticated STARTTLS session.
type smtpTransport struct {
	dialer *gomail.Dialer
}

func newSMTPTransport(host string, port int, user, pass string) (*smtpTransport, error) {
	if host == "" || user == "" || pass == "" {
		return nil, fmt.Errorf("notify: smtp host, user and pass are required")
	}
	return &smtpTransport{dialer: gomail.NewDialer(host, port, user, pass)}, nil
}

func (t *smtpTransport) name() string { return "smtp" }

// send runs the blocking dial-and-send in a goroutine so the ctx deadline
// still bounds the wait; gomail itself is not ctx-aware.
func (t *smtpTransport) send(ctx context.Context, msg message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	done := make(chan error, 1)
	go func() {
		done <- t.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}
