package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nao1215/markdown"
	"github.com/nao1215/mbdg/internal/config"
	"github.com/nao1215/mbdg/internal/database"
)

// timeLayout is used for history timestamps in text and markdown output.
const timeLayout = "2006-01-02 15:04:05"

// History is the data shown by the history command.
// Dictionaries lists the dictionaries the recent lookups were made against.
type History struct {
	Recent       []database.LookupRecord     `json:"recent"`
	Top          []database.QueryCount       `json:"top"`
	Dictionaries []database.DictionaryRecord `json:"dictionaries,omitempty"`
}

// WriteHistory renders h to w in the given format.
func WriteHistory(w io.Writer, h History, format string) error {
	switch format {
	case config.FormatText, "":
		return writeHistoryText(w, h)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(h)
	case config.FormatMarkdown:
		return writeHistoryMarkdown(w, h)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

// shortDigest keeps the first 12 hex digits of a dictionary digest.
func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}

func foundText(found bool) string {
	if found {
		return "found"
	}
	return "not found"
}

func writeHistoryText(w io.Writer, h History) error {
	if len(h.Recent) == 0 {
		_, err := fmt.Fprintln(w, "No lookups recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tQUERY\tRESULT")
	for _, r := range h.Recent {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Timestamp.Format(timeLayout), r.Query, foundText(r.Found))
	}
	if len(h.Top) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "QUERY\tCOUNT\tLAST RESULT")
		for _, q := range h.Top {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", q.Query, q.Count, foundText(q.Found))
		}
	}
	if len(h.Dictionaries) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "DICTIONARY\tENTRIES\tLOADED\tDIGEST")
		for _, d := range h.Dictionaries {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", d.Path, d.Entries, d.LoadedAt.Format(timeLayout), shortDigest(d.Digest))
		}
	}
	return tw.Flush()
}

func writeHistoryMarkdown(w io.Writer, h History) error {
	md := markdown.NewMarkdown(w)
	md.H1("Lookup History")
	md.PlainText("")

	if len(h.Recent) == 0 {
		md.Note("No lookups recorded.")
		return md.Build()
	}

	md.H2("Recent Lookups")
	md.PlainText("")
	rows := make([][]string, 0, len(h.Recent))
	for _, r := range h.Recent {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Timestamp.Format(timeLayout),
			escapeCell(r.Query),
			foundText(r.Found),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Time", "Query", "Result"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(h.Top) > 0 {
		md.H2("Most Frequent Queries")
		md.PlainText("")
		top := make([][]string, 0, len(h.Top))
		for _, q := range h.Top {
			top = append(top, []string{escapeCell(q.Query), strconv.Itoa(q.Count), foundText(q.Found)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Query", "Count", "Last Result"},
			Rows:   top,
		})
		md.PlainText("")
	}

	if len(h.Dictionaries) > 0 {
		md.H2("Dictionaries")
		md.PlainText("")
		dicts := make([][]string, 0, len(h.Dictionaries))
		for _, d := range h.Dictionaries {
			dicts = append(dicts, []string{
				escapeCell(d.Path),
				strconv.Itoa(d.Entries),
				d.LoadedAt.Format(timeLayout),
				shortDigest(d.Digest),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Path", "Entries", "Loaded", "Digest"},
			Rows:   dicts,
		})
		md.PlainText("")
	}

	return md.Build()
}
