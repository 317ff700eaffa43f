package evaluator

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/computerscienceiscool/scriptkit/internal/errors"
)

// Command is a single file-system or utility operation to evaluate.
type Command struct {
	Type  string
	Args  []string
	Async bool
}

// ExecutionResult holds the result of a command execution
type ExecutionResult struct {
	Command       Command
	Success       bool
	Result        any
	Error         error
	ExecutionTime time.Duration
}

// AuditFunc receives the outcome of every evaluated command.
type AuditFunc func(cmd, arg string, success bool, errMsg string)

// Executor handles command execution
type Executor struct {
	auditLog    AuditFunc
	commandsRun int
	mu          sync.Mutex
}

// NewExecutor creates a new executor instance. auditLog may be nil.
func NewExecutor(auditLog AuditFunc) *Executor {
	return &Executor{auditLog: auditLog}
}

// Execute dispatches command execution based on type
func (e *Executor) Execute(ctx context.Context, cmd Command) ExecutionResult {
	startTime := time.Now()
	result := ExecutionResult{Command: cmd}

	op, ok := operations[cmd.Type]
	if !ok {
		result.Error = fmt.Errorf("UNKNOWN_COMMAND: %s (known: %s)", cmd.Type, strings.Join(Commands(), ", "))
		result.ExecutionTime = time.Since(startTime)
		e.audit(cmd.Type, strings.Join(cmd.Args, " "), false, result.Error.Error())
		return result
	}

	arg := op.auditArg(cmd.Args)
	var value any
	err := op.check(cmd)
	if err == nil {
		value, err = op.run(ctx, cmd.Args, cmd.Async)
	}

	result.ExecutionTime = time.Since(startTime)
	if err != nil {
		result.Error = fmt.Errorf("%s: %w", errors.Code(err), err)
		e.audit(cmd.Type, arg, false, result.Error.Error())
		return result
	}

	result.Success = true
	result.Result = value
	e.audit(cmd.Type, arg, true, "")

	e.mu.Lock()
	e.commandsRun++
	e.mu.Unlock()

	return result
}

func (e *Executor) audit(cmd, arg string, success bool, errMsg string) {
	if e.auditLog != nil {
		e.auditLog(cmd, arg, success, errMsg)
	}
}

// GetCommandsRun returns the number of successfully executed commands
func (e *Executor) GetCommandsRun() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commandsRun
}

// Commands returns the command types the executor understands, sorted.
func Commands() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
