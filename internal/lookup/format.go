package lookup

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nao1215/mbdg/internal/model"
)

// NotFoundMessage returns the message shown for a key that has no entry.
func NotFoundMessage(key string) string {
	return fmt.Sprintf("Entry '%s' is not found. Please try again.", key)
}

// FormatEntry renders an entry as "<simplified> <pronunciation> <definitions>\n".
func FormatEntry(e model.Entry) string {
	return e.Simplified + " " + e.Pronunciation + " " + FormatDefinitions(e.Definitions) + "\n"
}

// FormatResult renders a result the way FormatLookup does.
func FormatResult(r model.Result) string {
	if !r.Found() {
		return NotFoundMessage(r.Query)
	}
	return FormatEntry(*r.Entry)
}

// FormatDefinitions renders definitions as a bracketed, comma-separated
// list of quoted strings, e.g. ['hello', 'hi'].
func FormatDefinitions(defs []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range defs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(d))
	}
	b.WriteByte(']')
	return b.String()
}

// quote wraps s in single quotes. A string holding a single quote but no
// double quote is wrapped in double quotes instead. Backslashes and the
// quote character are escaped, as are tab, newline, carriage return and
// every rune that is not printable (\xhh, \uhhhh or \Uhhhhhhhh).
func quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == q:
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(q)
	return b.String()
}
