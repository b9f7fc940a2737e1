package report

import (
	"fmt"
	"io"

	"github.com/nao1215/mbdg/internal/config"
	"github.com/nao1215/mbdg/internal/lookup"
)

// NewWriter returns the result writer for format, writing to w.
func NewWriter(format string, w io.Writer) (lookup.ResultWriter, error) {
	switch format {
	case config.FormatText, "":
		return lookup.NewTextWriter(w), nil
	case config.FormatJSON:
		return NewJSONWriter(w), nil
	case config.FormatMarkdown:
		return NewMarkdownWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

// Factory returns a lookup.WriterFactory for format.
// The format must have been validated; unknown formats fall back to text.
func Factory(format string) lookup.WriterFactory {
	return func(w io.Writer) lookup.ResultWriter {
		rw, err := NewWriter(format, w)
		if err != nil {
			return lookup.NewTextWriter(w)
		}
		return rw
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
