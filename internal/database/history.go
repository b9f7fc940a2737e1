package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the database file name inside the data directory.
const FileName = "mbdg.db"

// HistoryDB stores loaded dictionaries and recorded lookups.
type HistoryDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file; mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

func (hdb *HistoryDB) createTables() error {
	schema := `
	-- One row per distinct dictionary content
	CREATE TABLE IF NOT EXISTS dictionaries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		digest TEXT NOT NULL UNIQUE,
		entries INTEGER NOT NULL DEFAULT 0,
		loaded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- One row per recorded query
	CREATE TABLE IF NOT EXISTS lookups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		found INTEGER NOT NULL,
		mode TEXT NOT NULL,
		dictionary_digest TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_lookups_query ON lookups(query);
	CREATE INDEX IF NOT EXISTS idx_lookups_timestamp ON lookups(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// DictionaryRecord describes a loaded dictionary.
type DictionaryRecord struct {
	ID       int64     `json:"id"`
	Path     string    `json:"path"`
	Digest   string    `json:"digest"`
	Entries  int       `json:"entries"`
	LoadedAt time.Time `json:"loaded_at"`
}

// RegisterDictionary records a loaded dictionary. A dictionary with the same
// digest is updated in place with the latest path, entry count and time.
func (hdb *HistoryDB) RegisterDictionary(ctx context.Context, path, digest string, entries int) error {
	query := `
	INSERT INTO dictionaries (path, digest, entries)
	VALUES (?, ?, ?)
	ON CONFLICT(digest) DO UPDATE SET
		path = excluded.path,
		entries = excluded.entries,
		loaded_at = CURRENT_TIMESTAMP
	`

	if _, err := hdb.db.ExecContext(ctx, query, path, digest, entries); err != nil {
		return fmt.Errorf("failed to register dictionary: %w", err)
	}
	return nil
}

// GetDictionary returns the dictionary with the given digest, or nil if unknown.
func (hdb *HistoryDB) GetDictionary(ctx context.Context, digest string) (*DictionaryRecord, error) {
	query := `
	SELECT id, path, digest, entries, loaded_at
	FROM dictionaries
	WHERE digest = ?
	`

	var rec DictionaryRecord
	var loadedAt string
	err := hdb.db.QueryRowContext(ctx, query, digest).Scan(
		&rec.ID,
		&rec.Path,
		&rec.Digest,
		&rec.Entries,
		&loadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dictionary: %w", err)
	}

	rec.LoadedAt = parseTimestamp(loadedAt)
	return &rec, nil
}

// LookupRecord is one recorded query.
type LookupRecord struct {
	ID               int64     `json:"id"`
	Query            string    `json:"query"`
	Found            bool      `json:"found"`
	Mode             string    `json:"mode"`
	DictionaryDigest string    `json:"dictionary_digest"`
	Timestamp        time.Time `json:"timestamp"`
}

// RecordLookup stores a single query.
func (hdb *HistoryDB) RecordLookup(ctx context.Context, rec *LookupRecord) error {
	query := `
	INSERT INTO lookups (query, found, mode, dictionary_digest)
	VALUES (?, ?, ?, ?)
	`

	if _, err := hdb.db.ExecContext(ctx, query, rec.Query, rec.Found, rec.Mode, rec.DictionaryDigest); err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// RecentLookups returns up to limit recorded queries, newest first.
// A limit below 1 returns all records.
func (hdb *HistoryDB) RecentLookups(ctx context.Context, limit int) ([]LookupRecord, error) {
	query := `
	SELECT id, query, found, mode, dictionary_digest, timestamp
	FROM lookups
	ORDER BY id DESC
	`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var results []LookupRecord
	for rows.Next() {
		var rec LookupRecord
		var timestamp string
		if err := rows.Scan(
			&rec.ID,
			&rec.Query,
			&rec.Found,
			&rec.Mode,
			&rec.DictionaryDigest,
			&timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		rec.Timestamp = parseTimestamp(timestamp)
		results = append(results, rec)
	}

	return results, rows.Err()
}

// QueryCount is a query with the number of times it was recorded.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
	Found bool   `json:"found"`
}

// TopQueries returns the most frequently recorded queries, most frequent
// first. Found reports whether the latest lookup of the query succeeded.
func (hdb *HistoryDB) TopQueries(ctx context.Context, limit int) ([]QueryCount, error) {
	query := `
	SELECT l.query, COUNT(*) AS n,
		(SELECT found FROM lookups WHERE query = l.query ORDER BY id DESC LIMIT 1)
	FROM lookups l
	GROUP BY l.query
	ORDER BY n DESC, l.query
	LIMIT ?
	`
	if limit < 1 {
		limit = -1
	}

	rows, err := hdb.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top lookups: %w", err)
	}
	defer rows.Close()

	var results []QueryCount
	for rows.Next() {
		var qc QueryCount
		if err := rows.Scan(&qc.Query, &qc.Count, &qc.Found); err != nil {
			return nil, fmt.Errorf("failed to scan top lookup: %w", err)
		}
		results = append(results, qc)
	}

	return results, rows.Err()
}

// ClearLookups deletes all recorded queries and returns how many were removed.
func (hdb *HistoryDB) ClearLookups(ctx context.Context) (int64, error) {
	result, err := hdb.db.ExecContext(ctx, "DELETE FROM lookups")
	if err != nil {
		return 0, fmt.Errorf("failed to clear lookups: %w", err)
	}
	return result.RowsAffected()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// More specific formats come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp parses a SQLite timestamp, returning zero time if no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
