package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoDictionary is returned when the dictionary path is empty.
	ErrNoDictionary = errors.New("no dictionary specified: use --dictionary or set 'dictionary' in the config file")

	// ErrInvalidFormat is returned for an output format other than text, json or markdown.
	ErrInvalidFormat = errors.New("invalid format: must be one of text, json, markdown")

	// ErrOutputWithoutLookup is returned when --output is given without --lookup.
	ErrOutputWithoutLookup = errors.New("--output requires --lookup")

	// ErrOutputWithMultipleLookups is returned when --output is given with more than one --lookup.
	ErrOutputWithMultipleLookups = errors.New("--output cannot be used with more than one --lookup")

	// ErrInvalidJobs is returned when the job count is less than 1.
	ErrInvalidJobs = errors.New("jobs must be at least 1")

	// ErrInvalidMaxLineSize is returned when the line size limit is less than 1.
	ErrInvalidMaxLineSize = errors.New("max line size must be at least 1")

	// ErrNoDBDir is returned when history is enabled but no database directory is set.
	ErrNoDBDir = errors.New("history is enabled but no database directory is set")
)
