package mail

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogMailer is a development stand-in for a real transport: it logs the
// message instead of delivering it. main falls back to it when no AWS
// credentials are configured, so the server stays usable locally.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer constructs a LogMailer writing through the provided logger.
func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send logs the message and returns a locally generated message id.
func (m *LogMailer) Send(ctx context.Context, msg Message) (string, error) {
	id := uuid.NewString()
	m.log.InfoContext(ctx, "email not sent (log-only mailer)",
		"message_id", id,
		"to", msg.To,
		"subject", msg.Subject,
	)
	return id, nil
}
