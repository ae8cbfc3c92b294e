package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendGridTransport sends through the SendGrid v3 mail API.
type sendGridTransport struct {
	client *sendgrid.Client
}

func newSendGridTransport(apiKey string) *sendGridTransport {
	return &sendGridTransport{client: sendgrid.NewSendClient(apiKey)}
}

func (t *sendGridTransport) name() string { return "sendgrid" }

func (t *sendGridTransport) send(ctx context.Context, msg message) error {
	from := sgmail.NewEmail("", msg.From)
	to := sgmail.NewEmail("", msg.To)
	m := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	resp, err := t.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid send: API error (%d): %s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}
	return nil
}
