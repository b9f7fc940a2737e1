package model

// Entry is a single dictionary record.
//
// Both headwords are kept verbatim from the source line. Simplified is the
// lookup key; Traditional is informational only.
type Entry struct {
	// Traditional is the traditional-script headword.
	Traditional string `json:"traditional"`

	// Simplified is the simplified-script headword and the unique key
	// under which the entry is stored in a Dictionary.
	Simplified string `json:"simplified"`

	// Pronunciation is the free-form text found between the brackets.
	Pronunciation string `json:"pronunciation"`

	// Definitions are the senses in source order, primary sense first.
	// Empty strings produced by consecutive slashes are kept.
	Definitions []string `json:"definitions"`
}

// Equal reports whether two entries hold the same fields and definitions.
func (e Entry) Equal(other Entry) bool {
	if e.Traditional != other.Traditional ||
		e.Simplified != other.Simplified ||
		e.Pronunciation != other.Pronunciation ||
		len(e.Definitions) != len(other.Definitions) {
		return false
	}
	for i := range e.Definitions {
		if e.Definitions[i] != other.Definitions[i] {
			return false
		}
	}
	return true
}

// Result is the outcome of one query against a Dictionary.
type Result struct {
	// Query is the key as it was looked up, after trimming.
	Query string `json:"query"`

	// Entry is nil when the query is not in the dictionary.
	Entry *Entry `json:"entry,omitempty"`
}

// Found reports whether the query matched an entry.
func (r Result) Found() bool {
	return r.Entry != nil
}
