package common

import (
	"context"

	"atn-virtual/crewcenter/internal/logging"
)

// Mailer delivers one plain-text message. Delivery itself is provided by the
// deployment; the crew center only composes and queues.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes messages to the structured log instead of sending them
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logging.Info("Mail delivered to log",
		"to", to,
		"subject", subject,
		"body_length", len(body),
	)
	return nil
}
