package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/computerscienceiscool/scriptkit/pkg/audit"
	"github.com/computerscienceiscool/scriptkit/pkg/config"
)

// Session manages one CLI invocation and its audit sinks
type Session struct {
	ID        string
	Config    *config.Config
	StartTime time.Time

	store    audit.Store
	recorder *audit.Recorder
}

// NewSession creates a new execution session. The audit file and the audit
// database are opened only when their paths are configured.
func NewSession(cfg *config.Config, logger zerolog.Logger) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Config:    cfg,
		StartTime: time.Now(),
	}

	var file *audit.FileLogger
	if cfg.AuditLogPath != "" {
		f, err := audit.NewFileLogger(cfg.AuditLogPath)
		if err != nil {
			return nil, err
		}
		file = f
	}

	if cfg.AuditDBPath != "" {
		store, err := audit.OpenSQLite(cfg.AuditDBPath)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("cannot open audit database: %w", err)
		}
		s.store = store
	}

	s.recorder = audit.NewRecorder(s.ID, file, s.store, logger)
	return s, nil
}

// LogAudit writes an audit log entry
func (s *Session) LogAudit(command, argument string, success bool, errorMsg string) {
	s.recorder.Log(command, argument, success, errorMsg)
}

// HasStore reports whether an audit database is attached.
func (s *Session) HasStore() bool {
	return s.store != nil
}

// History returns the most recent audit events across all sessions.
func (s *Session) History(limit int) ([]audit.Event, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no audit database configured (set --audit-db)")
	}
	return s.store.Recent("", limit)
}

// Close releases the audit sinks.
func (s *Session) Close() error {
	return s.recorder.Close()
}
