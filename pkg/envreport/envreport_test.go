package envreport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range []string{"NAME", "SURNAME", "GROUP", "NUMBER", "MODE"} {
		t.Setenv(key, values[key])
	}
}

func TestRead_AllSet(t *testing.T) {
	setEnv(t, map[string]string{
		"NAME": "Ivan", "SURNAME": "Petrov", "GROUP": "IKBO-01", "NUMBER": "7", "MODE": "dev",
	})

	report, err := Read()
	require.NoError(t, err)

	assert.Empty(t, report.Missing)
	assert.Equal(t, []Field{
		{Label: "Name", Value: "Ivan", Set: true},
		{Label: "Surname", Value: "Petrov", Set: true},
		{Label: "Group", Value: "IKBO-01", Set: true},
		{Label: "Number", Value: "7", Set: true},
		{Label: "Mode", Value: "dev", Set: true},
	}, report.Fields)
}

func TestRead_Missing(t *testing.T) {
	setEnv(t, map[string]string{"NAME": "Ivan", "MODE": "prod"})

	report, err := Read()
	require.NoError(t, err)

	assert.Equal(t, []string{"Surname", "Group", "Number"}, report.Missing)
}

func TestReport_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	NewReport(Info{Name: "Ivan", Mode: "dev"}).Log(logger)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6, "one aggregated warning plus five fields")

	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[0], "Missing env variables: Surname, Group, Number")
	assert.Contains(t, lines[1], "Name: Ivan")
	assert.Contains(t, lines[2], "Surname: (not set)")
	assert.Contains(t, lines[5], "Mode: dev")
}

func TestReport_LogNoWarningWhenComplete(t *testing.T) {
	var buf bytes.Buffer
	NewReport(Info{Name: "a", Surname: "b", Group: "c", Number: "d", Mode: "e"}).Log(zerolog.New(&buf))

	assert.NotContains(t, buf.String(), "warn")
	assert.Equal(t, 5, strings.Count(buf.String(), "\n"))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("NAME=FromFile\nGROUP=G-1\n"), 0644))

	t.Setenv("NAME", "FromShell")
	t.Setenv("GROUP", "")
	require.NoError(t, os.Unsetenv("GROUP"))

	require.NoError(t, LoadDotEnv(envFile))

	assert.Equal(t, "FromShell", os.Getenv("NAME"), "existing variables win")
	assert.Equal(t, "G-1", os.Getenv("GROUP"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
