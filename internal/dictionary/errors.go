package dictionary

import "errors"

var (
	// ErrNotFound is returned by Load when the dictionary file does not exist.
	// The returned error also matches fs.ErrNotExist.
	ErrNotFound = errors.New("dictionary file not found")

	// ErrMalformedLine is returned by ParseLine for lines that do not
	// conform to the dictionary line format.
	ErrMalformedLine = errors.New("line does not conform to format")
)
