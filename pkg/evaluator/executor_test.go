package evaluator

import (
	"context"
	"strings"
	"sync"
	"testing"
)

type auditEntry struct {
	cmd     string
	arg     string
	success bool
	errMsg  string
}

type auditRecorder struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (r *auditRecorder) log(cmd, arg string, success bool, errMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, auditEntry{cmd, arg, success, errMsg})
}

func TestNewExecutor(t *testing.T) {
	rec := &auditRecorder{}
	executor := NewExecutor(rec.log)

	if executor == nil {
		t.Fatal("NewExecutor returned nil")
	}
	if executor.auditLog == nil {
		t.Error("auditLog not set correctly")
	}
	if executor.commandsRun != 0 {
		t.Errorf("expected commandsRun to be 0, got %d", executor.commandsRun)
	}
}

func TestNewExecutor_NilAuditLog(t *testing.T) {
	executor := NewExecutor(nil)

	result := executor.Execute(context.Background(), Command{Type: "sort", Args: []string{"b", "a"}})
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Error)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	rec := &auditRecorder{}
	executor := NewExecutor(rec.log)

	result := executor.Execute(context.Background(), Command{Type: "exec", Args: []string{"ls"}})

	if result.Success {
		t.Error("expected failure for unknown command")
	}
	if result.Error == nil || !strings.HasPrefix(result.Error.Error(), "UNKNOWN_COMMAND: exec") {
		t.Errorf("unexpected error: %v", result.Error)
	}
	if !strings.Contains(result.Error.Error(), "known: clear, copy, demo,") {
		t.Errorf("error should list the known commands: %v", result.Error)
	}
	if len(rec.entries) != 1 || rec.entries[0].success {
		t.Errorf("expected one failed audit entry, got %+v", rec.entries)
	}
	if executor.GetCommandsRun() != 0 {
		t.Errorf("failed commands must not be counted")
	}
}

func TestExecute_CountsOnlySuccess(t *testing.T) {
	executor := NewExecutor(nil)
	ctx := context.Background()

	executor.Execute(ctx, Command{Type: "sort", Args: []string{"x"}})
	executor.Execute(ctx, Command{Type: "read", Args: []string{"bad.exe"}})
	executor.Execute(ctx, Command{Type: "sort"})

	if got := executor.GetCommandsRun(); got != 2 {
		t.Errorf("expected 2 commands run, got %d", got)
	}
}

func TestExecute_Concurrent(t *testing.T) {
	rec := &auditRecorder{}
	executor := NewExecutor(rec.log)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			executor.Execute(context.Background(), Command{Type: "sort", Args: []string{"b", "a"}})
		}()
	}
	wg.Wait()

	if got := executor.GetCommandsRun(); got != 20 {
		t.Errorf("expected 20 commands run, got %d", got)
	}
	if len(rec.entries) != 20 {
		t.Errorf("expected 20 audit entries, got %d", len(rec.entries))
	}
}

func TestCommands(t *testing.T) {
	got := Commands()
	want := []string{"clear", "copy", "demo", "denoise", "list", "mkdir", "purge", "read", "replace", "rmdir", "sort", "write"}

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Commands() = %v, want %v", got, want)
	}
}
