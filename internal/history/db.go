// Package history records scan sessions in a sqlite database so the host
// can list prior runs and pick one for set comparison.
package history

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// DB wraps the SQL database connection for scan history.
type DB struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Entry represents a record in the scan_sessions table.
type Entry struct {
	ID         int64
	SessionID  string
	StartTime  time.Time
	EndTime    sql.NullTime
	Format     string
	SourcePath string
	UrlCount   int
	ErrorCount int
	Success    bool
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// NewSessionID generates a ULID session identifier; ULIDs sort by creation
// time, so session files and rows list chronologically.
func NewSessionID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewDB initializes the database connection and ensures the schema exists.
func NewDB(dataSourceName string, logger zerolog.Logger) (*DB, error) {
	componentLogger := logger.With().Str("component", "HistoryDB").Logger()
	componentLogger.Debug().Str("db_path", dataSourceName).Msg("Initializing history database")

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history database directory %s: %w", dbDir, err)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sql.Open failed for %s: %w", dataSourceName, err)
	}

	db := &DB{db: dbInstance, logger: componentLogger}
	if err := db.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

func (d *DB) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS scan_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT UNIQUE NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME,
		format TEXT NOT NULL,
		source_path TEXT NOT NULL,
		url_count INTEGER DEFAULT 0,
		error_count INTEGER DEFAULT 0,
		success INTEGER DEFAULT 0
	);
	`
	_, err := d.db.Exec(query)
	return err
}

// RecordStart inserts a session row at scan start.
func (d *DB) RecordStart(sessionID, format, sourcePath string, startTime time.Time) error {
	_, err := d.db.Exec(
		`INSERT INTO scan_sessions (session_id, start_time, format, source_path) VALUES (?, ?, ?, ?)`,
		sessionID, startTime, format, sourcePath,
	)
	if err != nil {
		return fmt.Errorf("failed to record session start for %s: %w", sessionID, err)
	}
	return nil
}

// RecordCompletion fills in the session outcome.
func (d *DB) RecordCompletion(sessionID string, endTime time.Time, urlCount, errorCount int, success bool) error {
	_, err := d.db.Exec(
		`UPDATE scan_sessions SET end_time = ?, url_count = ?, error_count = ?, success = ? WHERE session_id = ?`,
		endTime, urlCount, errorCount, success, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to record session completion for %s: %w", sessionID, err)
	}
	return nil
}

// LatestSession returns the most recent completed session for a source
// path, or sql.ErrNoRows when none exists.
func (d *DB) LatestSession(sourcePath string) (*Entry, error) {
	row := d.db.QueryRow(
		`SELECT id, session_id, start_time, end_time, format, source_path, url_count, error_count, success
		 FROM scan_sessions
		 WHERE source_path = ? AND end_time IS NOT NULL
		 ORDER BY session_id DESC LIMIT 1`,
		sourcePath,
	)

	var e Entry
	err := row.Scan(&e.ID, &e.SessionID, &e.StartTime, &e.EndTime, &e.Format, &e.SourcePath, &e.UrlCount, &e.ErrorCount, &e.Success)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListSessions returns up to limit sessions, newest first.
func (d *DB) ListSessions(limit int) ([]Entry, error) {
	rows, err := d.db.Query(
		`SELECT id, session_id, start_time, end_time, format, source_path, url_count, error_count, success
		 FROM scan_sessions ORDER BY session_id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.StartTime, &e.EndTime, &e.Format, &e.SourcePath, &e.UrlCount, &e.ErrorCount, &e.Success); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
