package model

import "slices"

// Dictionary is an immutable lookup table keyed by simplified headword.
//
// A Dictionary is assembled once by a Builder and never modified afterwards,
// so it is safe to share between readers.
type Dictionary struct {
	// Path is the source file the dictionary was loaded from.
	Path string

	// Digest is the hex-encoded SHA3-256 of the raw source bytes.
	// It identifies a dictionary version in lookup history.
	Digest string

	entries map[string]Entry
}

// Get returns a copy of the entry stored under key. The key is matched
// exactly. Changing the returned Definitions does not affect d.
func (d *Dictionary) Get(key string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.entries[key]
	if !ok {
		return Entry{}, false
	}
	e.Definitions = slices.Clone(e.Definitions)
	return e, true
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Builder accumulates entries for a Dictionary.
// Adding an entry whose simplified headword already exists replaces it.
type Builder struct {
	entries map[string]Entry
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]Entry)}
}

// Add inserts or overwrites the entry keyed by e.Simplified. The entry's
// definitions are copied. It reports whether an earlier entry was replaced.
func (b *Builder) Add(e Entry) bool {
	e.Definitions = slices.Clone(e.Definitions)
	_, replaced := b.entries[e.Simplified]
	b.entries[e.Simplified] = e
	return replaced
}

// Build returns the finished Dictionary. The Builder must not be used afterwards.
func (b *Builder) Build(path, digest string) *Dictionary {
	d := &Dictionary{
		Path:    path,
		Digest:  digest,
		entries: b.entries,
	}
	b.entries = nil
	return d
}
