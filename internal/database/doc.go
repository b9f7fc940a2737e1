// Package database provides SQLite-based lookup history for mbdg.
//
// The HistoryDB stores:
//   - Dictionaries that were loaded, identified by the SHA3-256 digest of their bytes
//   - Every recorded query, whether it was found, and which dictionary answered it
//
// SQLite is used via modernc.org/sqlite, which is CGO-free. The database is a
// single file in the XDG data directory.
package database
