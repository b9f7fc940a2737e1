package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/mbdg/internal/model"
)

// notFoundCell marks a query without an entry in markdown tables.
const notFoundCell = "*not found*"

// MarkdownWriter collects results and renders them as one table on Flush.
type MarkdownWriter struct {
	baseWriter
	results []model.Result
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteResult buffers result. Nothing is written until Flush.
func (w *MarkdownWriter) WriteResult(result model.Result) (int, error) {
	w.results = append(w.results, result)
	return 0, nil
}

// Flush renders the buffered results and resets the buffer.
func (w *MarkdownWriter) Flush() (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H2("Lookup Results")
	md.PlainText("")

	rows := make([][]string, 0, len(w.results))
	found := 0
	for _, r := range w.results {
		if r.Entry == nil {
			rows = append(rows, []string{escapeCell(r.Query), notFoundCell, "", ""})
			continue
		}
		found++
		rows = append(rows, []string{
			escapeCell(r.Query),
			escapeCell(r.Entry.Traditional),
			escapeCell(r.Entry.Pronunciation),
			escapeCell(strings.Join(r.Entry.Definitions, "; ")),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Simplified", "Traditional", "Pronunciation", "Definitions"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainTextf("%d of %d entries found.", found, len(w.results))
	md.PlainText("")

	w.results = nil
	return len(md.String()), md.Build()
}

// escapeCell keeps pipe characters from breaking the table layout.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
