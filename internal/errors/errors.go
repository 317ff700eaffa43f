package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced by scriptkit operations. File-system failures are not
// listed here: they are returned unchanged from the os layer.
var (
	ErrDisallowedExtension = fmt.Errorf("EXTENSION_DENIED")
	ErrInvalidArgument     = fmt.Errorf("INVALID_ARGUMENT")
	ErrAggregate           = fmt.Errorf("AGGREGATE_FAILURE")
)

// ExtensionError reports a path whose extension is outside the allow-list.
type ExtensionError struct {
	Path    string
	Ext     string
	Allowed []string
}

func (e *ExtensionError) Error() string {
	ext := e.Ext
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("disallowed extension %s for path %s (allowed: %s)",
		ext, e.Path, strings.Join(e.Allowed, ", "))
}

func (e *ExtensionError) Unwrap() error {
	return ErrDisallowedExtension
}

// ValidationError wraps argument validation errors
type ValidationError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s (value: %v): %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// EntryError ties a failure to the path it happened on.
type EntryError struct {
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// AggregateError collects the failures of concurrent sub-operations. It is
// only produced after every sub-operation has settled.
type AggregateError struct {
	Op   string
	Errs []error
}

func (e *AggregateError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s: %d of the concurrent operations failed: %s",
		e.Op, len(e.Errs), strings.Join(msgs, "; "))
}

// Unwrap exposes both the aggregate marker and every collected failure so
// errors.Is and errors.As see through to individual entries.
func (e *AggregateError) Unwrap() []error {
	return append([]error{ErrAggregate}, e.Errs...)
}

// NewAggregate flattens err (typically the result of errors.Join) into an
// AggregateError. It returns nil when err is nil.
func NewAggregate(op string, err error) error {
	if err == nil {
		return nil
	}
	var errs []error
	switch joined := err.(type) {
	case interface{ Unwrap() []error }:
		errs = joined.Unwrap()
	case interface{ Errors() []error }:
		errs = joined.Errors()
	default:
		errs = []error{err}
	}
	return &AggregateError{Op: op, Errs: errs}
}

// Code returns the leading error code of err, mirroring the CODE: message
// convention used by the evaluator. Unknown errors map to IO_ERROR.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDisallowedExtension):
		return ErrDisallowedExtension.Error()
	case errors.Is(err, ErrInvalidArgument):
		return ErrInvalidArgument.Error()
	case errors.Is(err, ErrAggregate):
		return ErrAggregate.Error()
	default:
		return "IO_ERROR"
	}
}
