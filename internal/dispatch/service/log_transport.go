package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogTransport writes messages to the log instead of delivering them.
type LogTransport struct {
	logger *slog.Logger
}

// NewLogTransport creates a transport for local development.
func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

// Send logs the message and reports success.
func (t *LogTransport) Send(ctx context.Context, msg Message) (*SendResult, error) {
	messageID := "log-" + uuid.Must(uuid.NewV7()).String()

	t.logger.InfoContext(ctx, "email delivered to log",
		slog.String("message_id", messageID),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return &SendResult{MessageID: messageID}, nil
}
