package app

import (
	"context"

	"github.com/computerscienceiscool/scriptkit/pkg/audit"
	"github.com/computerscienceiscool/scriptkit/pkg/config"
	"github.com/computerscienceiscool/scriptkit/pkg/evaluator"
	"github.com/computerscienceiscool/scriptkit/pkg/session"
)

// App represents the main application
type App struct {
	config   *config.Config
	session  *session.Session
	executor *evaluator.Executor
}

// Run evaluates a single command with the configured async mode.
func (a *App) Run(ctx context.Context, cmdType string, args ...string) evaluator.ExecutionResult {
	return a.executor.Execute(ctx, evaluator.Command{
		Type:  cmdType,
		Args:  args,
		Async: a.config.Async,
	})
}

// History returns recent audit events, newest first.
func (a *App) History(limit int) ([]audit.Event, error) {
	return a.session.History(limit)
}

// Close releases the session's audit sinks.
func (a *App) Close() error {
	return a.session.Close()
}

// GetSession returns the app's session
func (a *App) GetSession() *session.Session {
	return a.session
}

// GetExecutor returns the app's executor
func (a *App) GetExecutor() *evaluator.Executor {
	return a.executor
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}
