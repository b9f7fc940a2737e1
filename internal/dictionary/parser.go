package dictionary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nao1215/mbdg/internal/model"
)

// commentPrefix marks a line that is ignored entirely.
const commentPrefix = '#'

// linePattern captures traditional, simplified, pronunciation and the
// definitions field. The headword and pronunciation groups are non-greedy;
// the definitions group runs to the final slash.
var linePattern = regexp.MustCompile(`^(.*?) (.*?) \[(.*?)\] /(.*)/$`)

// IsComment reports whether line is a comment line.
func IsComment(line string) bool {
	return line != "" && line[0] == commentPrefix
}

// ParseLine parses a single dictionary line without its terminator.
// Comment lines are not special here; callers filter them with IsComment.
func ParseLine(line string) (model.Entry, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return model.Entry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	return model.Entry{
		Traditional:   m[1],
		Simplified:    m[2],
		Pronunciation: m[3],
		Definitions:   strings.Split(m[4], "/"),
	}, nil
}
