// Package audit records the outcome of every evaluated command to a JSON log
// file and, optionally, a sqlite database.
package audit

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Recorder fans a command outcome out to the configured sinks. Either sink
// may be nil.
type Recorder struct {
	sessionID string
	file      *FileLogger
	store     Store
	logger    zerolog.Logger
}

func NewRecorder(sessionID string, file *FileLogger, store Store, logger zerolog.Logger) *Recorder {
	return &Recorder{
		sessionID: sessionID,
		file:      file,
		store:     store,
		logger:    logger,
	}
}

// SessionID returns the session the recorder stamps on every event.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Log records one command outcome. Its signature matches the evaluator's
// audit callback. A store failure is logged, never returned.
func (r *Recorder) Log(command, argument string, success bool, errMsg string) {
	e := Event{
		Timestamp: time.Now().UTC(),
		SessionID: r.sessionID,
		Command:   command,
		Argument:  argument,
		Success:   success,
		ErrorMsg:  errMsg,
	}

	r.file.Log(e)
	if r.store != nil {
		if err := r.store.Record(e); err != nil {
			r.logger.Warn().Err(err).Str("command", command).Msg("failed to persist audit event")
		}
	}
}

// Close releases both sinks.
func (r *Recorder) Close() error {
	var errs []error
	if err := r.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
