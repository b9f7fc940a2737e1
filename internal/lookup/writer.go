package lookup

import (
	"io"
	"strings"

	"github.com/nao1215/mbdg/internal/model"
)

// ResultWriter writes lookup results to a destination.
// Flush is called once after the last result.
type ResultWriter interface {
	WriteResult(result model.Result) (int, error)
	Flush() (int, error)
}

// WriterFactory creates a ResultWriter for an output stream.
type WriterFactory func(w io.Writer) ResultWriter

// TextWriter writes each result as one line in the FormatLookup format.
// Every record ends with exactly one newline, including not-found messages.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that writes to w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{output: w}
}

// WriteResult writes the formatted result line.
func (w *TextWriter) WriteResult(result model.Result) (int, error) {
	line := FormatResult(result)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	return io.WriteString(w.output, line)
}

// Flush is a no-op; TextWriter does not buffer.
func (w *TextWriter) Flush() (int, error) {
	return 0, nil
}
