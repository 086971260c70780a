// Package observability provides the logging, metrics, and tracing surface
// for event dispatch: structured logging via slog (Go stdlib), metrics and
// tracing via OpenTelemetry.
//
// The core dispatch package has no diagnostic surface of its own; these
// helpers hook in from the outside, typically through Observe, which
// returns an ordinary handler. All features are opt-in and have no-op
// implementations when disabled.
package observability

import "log/slog"

// EnrichLogger adds event context to a logger.
// Returns a new logger with the event field attached.
func EnrichLogger(logger *slog.Logger, eventName string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("event", eventName))
}

// LogFire logs a completed firing.
func LogFire(logger *slog.Logger, eventName string, caller any, cancelled bool) {
	if logger == nil {
		return
	}
	logger.Info("event fired",
		slog.String("event", eventName),
		slog.Any("caller", caller),
		slog.Bool("cancelled", cancelled),
	)
}

// LogBind logs a compound binding a source.
func LogBind(logger *slog.Logger, compound, source string) {
	if logger == nil {
		return
	}
	logger.Debug("source bound",
		slog.String("compound", compound),
		slog.String("source", source),
	)
}

// LogUnbind logs a compound releasing a source.
func LogUnbind(logger *slog.Logger, compound, source string) {
	if logger == nil {
		return
	}
	logger.Debug("source unbound",
		slog.String("compound", compound),
		slog.String("source", source),
	)
}
