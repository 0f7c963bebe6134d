package notifier

import (
	"context"
	"log/slog"

	"hotel-booking/internal/usecase/commands"
)

// LogNotifier records events in the application log when no broker is configured
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Publish(ctx context.Context, event commands.Event) {
	n.logger.InfoContext(ctx, "event",
		"topic", event.Topic,
		"roles", event.Roles,
		"payload", event.Payload)
}
