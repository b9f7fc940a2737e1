// Package model defines the dictionary types shared by the loader, the
// lookup service and the report writers.
//
// The main types are:
//   - Entry: one parsed dictionary line
//   - Dictionary: an immutable table of entries keyed by simplified headword
//   - Result: the outcome of a single query
//
// Keeping them here lets dictionary, lookup, database and report depend on
// the same types without importing each other.
package model
