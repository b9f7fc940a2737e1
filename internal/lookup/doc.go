// Package lookup answers queries against a loaded dictionary.
//
// A Service wraps one *model.Dictionary. It offers exact single-key lookup,
// the formatted one-line rendering used by every output path, bulk lookup
// from a word list file, concurrent bulk lookup over several files, and
// the interactive prompt loop.
//
// Bulk output is always appended, never truncated: running the same bulk
// lookup twice against one output file leaves both runs in the file.
package lookup
