// Package cli implements the heatpath command-line interface.
//
// This package provides commands for finding minimum-cost routes through
// heatmap images and frame sequences, generating synthetic fixtures, and
// comparing the search strategies against each other. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - path: Find a route through a single heatmap image
//   - route: Find a route through an ordered frame sequence
//   - gen: Generate synthetic heatmap fixtures
//   - compare: Benchmark the strategies against one input
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, so every command logs through the one
// configured sink.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration, rounded to the nearest millisecond.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the tracker was created.
// Example output: "Routed 120 frames (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}

// withConfig returns a new context with the loaded file config attached.
func withConfig(ctx context.Context, c fileConfig) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext retrieves the file config from ctx; the zero value means
// no config file was found.
func configFromContext(ctx context.Context) fileConfig {
	if c, ok := ctx.Value(configKey).(fileConfig); ok {
		return c
	}

	return fileConfig{}
}
