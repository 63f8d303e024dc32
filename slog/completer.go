package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/warmlead/pitch"
)

// Ensure LoggingCompleter implements pitch.Completer at compile time.
var _ pitch.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with request logging.
type LoggingCompleter struct {
	next   pitch.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next pitch.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the outcome.
func (c *LoggingCompleter) Complete(ctx context.Context, req pitch.PromptRequest) (string, error) {
	begin := time.Now()
	out, err := c.next.Complete(ctx, req)
	if err != nil {
		c.logger.Error("complete",
			"model", req.Model,
			"prompt_bytes", len(req.Prompt),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	c.logger.Info("complete",
		"model", req.Model,
		"prompt_bytes", len(req.Prompt),
		"output_bytes", len(out),
		"duration", time.Since(begin),
	)
	return out, nil
}
