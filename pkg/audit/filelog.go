package audit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileLogger appends audit events to a file as JSON lines.
type FileLogger struct {
	logger zerolog.Logger
	file   *os.File
}

// NewFileLogger opens logPath for appending.
func NewFileLogger(logPath string) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("could not create audit log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open audit log: %w", err)
	}

	return &FileLogger{
		logger: zerolog.New(file).With().Timestamp().Logger(),
		file:   file,
	}, nil
}

// Log writes one audit line.
func (a *FileLogger) Log(e Event) {
	if a == nil || a.file == nil {
		return
	}

	status := "success"
	if !e.Success {
		status = "failed"
	}

	entry := a.logger.Info().
		Str("session", e.SessionID).
		Str("command", e.Command).
		Str("argument", e.Argument).
		Str("status", status)
	if e.ErrorMsg != "" {
		entry = entry.Str("error", e.ErrorMsg)
	}
	entry.Send()
}

// Close closes the audit log file
func (a *FileLogger) Close() error {
	if a != nil && a.file != nil {
		return a.file.Close()
	}
	return nil
}
