// Package obs holds observability plumbing: logging and metrics.
package obs

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewLogger builds the JSON logger for one run. The run id lets log lines
// from a single invocation be correlated; components receive the logger
// explicitly instead of reaching for a package global.
func NewLogger() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With("run_id", uuid.New().String())
}
