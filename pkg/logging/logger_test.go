package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{" error ", zerolog.ErrorLevel, false},
		{"trace", zerolog.TraceLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitializeAndGet(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	require.NoError(t, Initialize("info", &buf))

	logger := Get("fstools")
	logger.Info().Str("path", "a.txt").Msg("wrote file")
	logger.Debug().Msg("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, "wrote file")
	assert.Contains(t, out, "component=fstools")
	assert.Contains(t, out, "path=a.txt")
	assert.NotContains(t, out, "hidden at info level")
}

func TestInitialize_BadLevel(t *testing.T) {
	assert.Error(t, Initialize("verbose", &bytes.Buffer{}))
}
