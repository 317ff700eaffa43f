package app

import (
	"fmt"

	"github.com/computerscienceiscool/scriptkit/pkg/config"
	"github.com/computerscienceiscool/scriptkit/pkg/evaluator"
	"github.com/computerscienceiscool/scriptkit/pkg/logging"
	"github.com/computerscienceiscool/scriptkit/pkg/session"
)

// Bootstrap initializes and returns a configured App
func Bootstrap(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sess, err := session.NewSession(cfg, logging.Get("audit"))
	if err != nil {
		return nil, fmt.Errorf("cannot start session: %w", err)
	}

	// Create executor with audit logging
	exec := evaluator.NewExecutor(sess.LogAudit)

	logger := logging.Get("app")
	logger.Debug().
		Str("session", sess.ID).
		Bool("async", cfg.Async).
		Str("audit_db", cfg.AuditDBPath).
		Str("audit_log", cfg.AuditLogPath).
		Msg("session started")

	return &App{
		config:   cfg,
		session:  sess,
		executor: exec,
	}, nil
}
