// Package report provides output formats for lookup results and history.
//
// Result writers satisfy lookup.ResultWriter:
//   - lookup.TextWriter: the one-line format, used by default
//   - JSONWriter: one JSON object per line, for tool integration
//   - MarkdownWriter: a table of all results, rendered on Flush
//
// NewWriter selects a writer by format name. WriteHistory renders recorded
// lookups from the history database in the same three formats.
package report
