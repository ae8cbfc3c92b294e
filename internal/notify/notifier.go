package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/keturi/jobwatch/internal/config"
	"github.com/keturi/jobwatch/internal/domain"
	"github.com/keturi/jobwatch/internal/domain/digest"
	"github.com/keturi/jobwatch/pkg/logging"
)

// message is one outbound email with both body variants.
type message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// transport delivers one message atomically. No retry, no partial delivery.
type transport interface {
	name() string
	send(ctx context.Context, msg message) error
}

// EmailNotifier implements digest.Notifier over exactly one mail transport.
// SendGrid wins when its key is configured, SMTP otherwise.
type EmailNotifier struct {
	transport transport
	from      string
	to        string
	timeout   time.Duration
	log       *logging.Logger
}

// New selects the transport from config and builds the notifier.
func New(cfg config.Config, log *logging.Logger) (*EmailNotifier, error) {
	if cfg.Mail.From == "" || cfg.Mail.To == "" {
		return nil, fmt.Errorf("notify: from and to addresses are required")
	}
	if log == nil {
		log = logging.Nop()
	}

	var t transport
	if cfg.SendGridEnabled() {
		t = newSendGridTransport(cfg.Mail.SendGridAPIKey)
	} else {
		var err error
		t, err = newSMTPTransport(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUser, cfg.Mail.SMTPPass)
		if err != nil {
			return nil, err
		}
	}

	return &EmailNotifier{
		transport: t,
		from:      cfg.Mail.From,
		to:        cfg.Mail.To,
		timeout:   cfg.HTTPTimeout,
		log:       log,
	}, nil
}

// Notify sends one digest mail. Failures come back as domain.NotifyError.
func (n *EmailNotifier) Notify(ctx context.Context, subject, htmlBody, textBody string) error {
	if textBody == "" {
		textBody = "See HTML body"
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	msg := message{
		From:    n.from,
		To:      n.to,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	}

	if err := n.transport.send(ctx, msg); err != nil {
		n.log.Warn("notification send failed", "transport", n.transport.name(), "to", n.to, "err", err)
		return &domain.NotifyError{Transport: n.transport.name(), Err: err}
	}

	n.log.Debug("notification sent", "transport", n.transport.name(), "to", n.to)
	return nil
}

var _ digest.Notifier = (*EmailNotifier)(nil)
