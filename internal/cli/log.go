// Package cli implements the boxorbit command-line interface.
//
// The commands load a film dataset, drive it through the build pipeline and
// hand the result to one of the output surfaces: files (render), a window
// (view), an HTTP server (serve) or the terminal (inspect, legend). Artifacts
// are cached on disk or in Redis. The CLI is built using cobra and logs via
// charmbracelet/log.
//
// # Commands
//
//   - render: Write the scene as JSON, SVG, PNG or WebP
//   - view: Open the interactive orbit viewer
//   - serve: Serve the scene, legend and previews over HTTP
//   - inspect: Browse film placements in a terminal table
//   - legend: Print the genre legend
//   - config: Print the effective configuration
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every pipeline stage, cache lookup and dataset fetch.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one CLI operation end to end, including file output
// that the pipeline's own stage timings do not cover.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at Info with keyvals and the elapsed time, rounded to the
// millisecond, under "duration".
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "duration", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
