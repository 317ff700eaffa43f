package audit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Event is one recorded command outcome.
type Event struct {
	ID        int64     `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	SessionID string    `json:"session_id" yaml:"session_id"`
	Command   string    `json:"command" yaml:"command"`
	Argument  string    `json:"argument" yaml:"argument"`
	Success   bool      `json:"success" yaml:"success"`
	ErrorMsg  string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Store persists audit events.
type Store interface {
	Record(e Event) error
	Recent(sessionID string, limit int) ([]Event, error)
	Close() error
}

// SQLiteStore implements Store on a sqlite database file.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS audit_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME NOT NULL,
	session_id TEXT NOT NULL,
	command TEXT NOT NULL,
	argument TEXT NOT NULL,
	success BOOLEAN NOT NULL,
	error_msg TEXT
);
CREATE INDEX IF NOT EXISTS idx_session ON audit_logs(session_id);
CREATE INDEX IF NOT EXISTS idx_timestamp ON audit_logs(timestamp);
`

// OpenSQLite opens (creating if needed) the database at dbPath and makes sure
// the audit_logs table exists.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Record inserts e. A zero timestamp is replaced by the current time.
func (s *SQLiteStore) Record(e Event) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO audit_logs (timestamp, session_id, command, argument, success, error_msg)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Timestamp, e.SessionID, e.Command, e.Argument, e.Success, e.ErrorMsg)
	return err
}

// Recent returns up to limit events, newest first. An empty sessionID
// returns events from every session.
func (s *SQLiteStore) Recent(sessionID string, limit int) ([]Event, error) {
	query := `
		SELECT id, timestamp, session_id, command, argument, success, error_msg
		FROM audit_logs
		WHERE (? = '' OR session_id = ?)
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.Query(query, sessionID, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var (
			e      Event
			errMsg sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.SessionID, &e.Command, &e.Argument, &e.Success, &errMsg); err != nil {
			return nil, err
		}
		e.ErrorMsg = errMsg.String
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
