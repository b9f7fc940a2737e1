// Package log provides the structured loggers used by mbdg, built on top of
// the standard slog package.
//
// Loggers write to stderr at warn level by default and at debug level in
// verbose mode. Every logger wraps its handler in a TruncatingHandler, which
// shortens long string attributes. Malformed dictionary lines are logged
// verbatim, and a single broken line in a large dictionary can be very long.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Warn("line does not conform to format", "line", 12, "text", raw)
package log
