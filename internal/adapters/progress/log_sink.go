package progress

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// LogSink reports progress through the logger instead of a terminal spinner.
// Used for --json, --debug and non-interactive runs where stderr may be captured.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a progress sink that writes to log
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("component", "progress")}
}

// OnProgress logs stage transitions at debug level
func (s *LogSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Message == "" {
		s.log.DebugContext(ctx, "stage", "stage", event.Stage)
		return
	}
	s.log.DebugContext(ctx, event.Message, "stage", event.Stage)
}

// Info logs an informational message
func (s *LogSink) Info(message string) {
	s.log.Info(message)
}

// Error logs an error message
func (s *LogSink) Error(message string) {
	s.log.Error(message)
}

var _ usecase.ProgressSink = (*LogSink)(nil)
