// Package rundebug is an optional, opt-in history of Execute outcomes,
// persisted to a local sqlite database when --log-runs is set. It is
// never read back by the protocol itself; the wire protocol carries no
// persisted state of its own, this is purely a debugging add-on.
package rundebug

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/codemonkey-cli/codemonkey/internal/config"
)

// RunRecord is one logged Execute outcome.
type RunRecord struct {
	ConnectionID string
	Ok           bool
	Message      string
	At           time.Time
}

// Store persists RunRecords. The executor's RunLogger interface is
// satisfied by LogRun alone; Store adds Close. Read access (Recent) is
// on SQLiteStore only.
type Store interface {
	LogRun(connectionID string, ok bool, message string)
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    connection_id TEXT NOT NULL,
    ok BOOLEAN NOT NULL,
    message TEXT,
    at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// OpenDefault opens (creating if needed) the run history database under
// the XDG config directory.
func OpenDefault() (*SQLiteStore, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get config dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	return Open(filepath.Join(dir, "runs.db"))
}

// Open opens a SQLiteStore at path, creating the schema if needed.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// LogRun records one Execute outcome. Failures are swallowed: history
// is a diagnostic convenience, not load-bearing for the protocol.
func (s *SQLiteStore) LogRun(connectionID string, ok bool, message string) {
	_, _ = s.db.Exec(
		`INSERT INTO runs (connection_id, ok, message) VALUES (?, ?, ?)`,
		connectionID, ok, message,
	)
}

// Recent returns the last n run records, most recent first.
func (s *SQLiteStore) Recent(n int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT connection_id, ok, message, at FROM runs ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var message sql.NullString
		if err := rows.Scan(&r.ConnectionID, &r.Ok, &message, &r.At); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Message = message.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// NoopStore discards every LogRun call. The agent command does not use
// it: without --log-runs it leaves the server's Logger nil.
type NoopStore struct{}

func (NoopStore) LogRun(connectionID string, ok bool, message string) {}
func (NoopStore) Close() error                                        { return nil }
