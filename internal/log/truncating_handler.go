package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueRunes is the longest string attribute value, in runes,
// that is logged without truncation.
const DefaultMaxValueRunes = 200

// TruncationMarker is appended to values that were shortened.
const TruncationMarker = "…(truncated)"

// TruncatingHandler wraps an slog.Handler and shortens string attribute
// values longer than a fixed number of runes. Group attributes are
// processed recursively. Cutting happens on rune boundaries so multi-byte
// headwords are never split.
type TruncatingHandler struct {
	handler  slog.Handler
	maxRunes int
}

// NewTruncatingHandler creates a TruncatingHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used. A maxRunes below 1
// selects DefaultMaxValueRunes.
func NewTruncatingHandler(handler slog.Handler, maxRunes int) *TruncatingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxRunes < 1 {
		maxRunes = DefaultMaxValueRunes
	}
	return &TruncatingHandler{handler: handler, maxRunes: maxRunes}
}

// Enabled delegates to the underlying handler.
func (h *TruncatingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle truncates the record's attributes and passes it on.
func (h *TruncatingHandler) Handle(ctx context.Context, r slog.Record) error {
	truncated := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		truncated.AddAttrs(h.truncateAttr(a))
		return true
	})
	return h.handler.Handle(ctx, truncated)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *TruncatingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = h.truncateAttr(a)
	}
	return &TruncatingHandler{handler: h.handler.WithAttrs(out), maxRunes: h.maxRunes}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncatingHandler) WithGroup(name string) slog.Handler {
	return &TruncatingHandler{handler: h.handler.WithGroup(name), maxRunes: h.maxRunes}
}

func (h *TruncatingHandler) truncateAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			out[i] = h.truncateAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}

	if a.Value.Kind() == slog.KindString {
		if s, ok := Truncate(a.Value.String(), h.maxRunes); ok {
			return slog.String(a.Key, s)
		}
	}
	return a
}

// Truncate shortens s to at most maxRunes runes followed by TruncationMarker.
// It reports whether s was shortened.
func Truncate(s string, maxRunes int) (string, bool) {
	if maxRunes < 1 || utf8.RuneCountInString(s) <= maxRunes {
		return s, false
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + TruncationMarker, true
		}
		n++
	}
	return s, false
}

// NewLogger creates a text logger writing to w.
// verbose selects debug level; otherwise only warnings and errors are logged.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTruncatingHandler(slog.NewTextHandler(w, handlerOptions(verbose)), DefaultMaxValueRunes))
}

// NewJSONLogger creates a JSON logger writing to w.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTruncatingHandler(slog.NewJSONHandler(w, handlerOptions(verbose)), DefaultMaxValueRunes))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
