package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/computerscienceiscool/scriptkit/internal/errors"
)

// Config holds the resolved settings for one CLI invocation.
type Config struct {
	Async        bool   `json:"async" yaml:"async"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
	Format       string `json:"format" yaml:"format"`
	AuditDBPath  string `json:"audit_db" yaml:"audit_db"`
	AuditLogPath string `json:"audit_log" yaml:"audit_log"`
	HistoryLimit int    `json:"history_limit" yaml:"history_limit"`
	EnvFile      string `json:"env_file" yaml:"env_file"`
	DemoDir      string `json:"demo_dir" yaml:"demo_dir"`
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if !slices.Contains(Formats(), c.Format) {
		return &errors.ValidationError{
			Field: "format",
			Value: c.Format,
			Err:   fmt.Errorf("%w: expected one of %s", errors.ErrInvalidArgument, strings.Join(Formats(), ", ")),
		}
	}
	if c.HistoryLimit <= 0 {
		return &errors.ValidationError{
			Field: "history.limit",
			Value: c.HistoryLimit,
			Err:   fmt.Errorf("%w: must be positive", errors.ErrInvalidArgument),
		}
	}
	return nil
}
