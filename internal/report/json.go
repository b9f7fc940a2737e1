package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/mbdg/internal/model"
)

// jsonResult is the JSON shape of one lookup result.
type jsonResult struct {
	Query         string   `json:"query"`
	Found         bool     `json:"found"`
	Simplified    string   `json:"simplified,omitempty"`
	Traditional   string   `json:"traditional,omitempty"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Definitions   []string `json:"definitions,omitempty"`
}

func newJSONResult(r model.Result) jsonResult {
	out := jsonResult{Query: r.Query, Found: r.Found()}
	if r.Entry != nil {
		out.Simplified = r.Entry.Simplified
		out.Traditional = r.Entry.Traditional
		out.Pronunciation = r.Entry.Pronunciation
		out.Definitions = r.Entry.Definitions
	}
	return out
}

// JSONWriter writes one JSON object per result, one per line.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// WriteResult writes result as a single JSON line.
func (w *JSONWriter) WriteResult(result model.Result) (int, error) {
	data, err := json.Marshal(newJSONResult(result))
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}

// Flush is a no-op; JSONWriter does not buffer.
func (w *JSONWriter) Flush() (int, error) {
	return 0, nil
}
