package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Record(e Event) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockStore) Recent(sessionID string, limit int) ([]Event, error) {
	args := m.Called(sessionID, limit)
	return args.Get(0).([]Event), args.Error(1)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestRecorder_LogToFileAndStore(t *testing.T) {
	var _ Store = (*MockStore)(nil)

	logPath := filepath.Join(t.TempDir(), "logs", "audit.log")
	file, err := NewFileLogger(logPath)
	require.NoError(t, err)

	store := &MockStore{}
	store.On("Record", mock.MatchedBy(func(e Event) bool {
		return e.SessionID == "sess-1" && e.Command == "write" && e.Argument == "notes.txt" && e.Success
	})).Return(nil).Once()
	store.On("Record", mock.MatchedBy(func(e Event) bool {
		return e.Command == "read" && !e.Success && e.ErrorMsg == "IO_ERROR: missing"
	})).Return(nil).Once()
	store.On("Close").Return(nil)

	rec := NewRecorder("sess-1", file, store, zerolog.Nop())
	assert.Equal(t, "sess-1", rec.SessionID())

	rec.Log("write", "notes.txt", true, "")
	rec.Log("read", "gone.txt", false, "IO_ERROR: missing")
	require.NoError(t, rec.Close())

	store.AssertExpectations(t)

	lines := readLines(t, logPath)
	require.Len(t, lines, 2)
	assert.Equal(t, "sess-1", lines[0]["session"])
	assert.Equal(t, "write", lines[0]["command"])
	assert.Equal(t, "success", lines[0]["status"])
	assert.NotContains(t, lines[0], "error")
	assert.Equal(t, "failed", lines[1]["status"])
	assert.Equal(t, "IO_ERROR: missing", lines[1]["error"])
}

func TestRecorder_StoreFailureIsLogged(t *testing.T) {
	store := &MockStore{}
	store.On("Record", mock.Anything).Return(errors.New("database is locked"))

	var buf bytes.Buffer
	rec := NewRecorder("sess-2", nil, store, zerolog.New(&buf))

	rec.Log("clear", "a.txt", true, "")

	assert.Contains(t, buf.String(), "failed to persist audit event")
	assert.Contains(t, buf.String(), "database is locked")
}

func TestRecorder_NoSinks(t *testing.T) {
	rec := NewRecorder("sess-3", nil, nil, zerolog.Nop())

	assert.NotPanics(t, func() { rec.Log("mkdir", "out", true, "") })
	assert.NoError(t, rec.Close())
}

func TestRecorder_CloseJoinsErrors(t *testing.T) {
	store := &MockStore{}
	store.On("Close").Return(errors.New("close failed"))

	rec := NewRecorder("sess-4", nil, store, zerolog.Nop())
	assert.EqualError(t, rec.Close(), "close failed")
}
