package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastEntry decodes the single JSON entry written to buf.
func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("mockapi", &buf)

	l.Info().Str("endpoint", "auth/login").Msg("request served")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "mockapi", entry["role"])
	assert.Equal(t, "auth/login", entry["endpoint"])
	assert.Equal(t, "request served", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_ResetsGlobalLevel(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	require.NotNil(t, NewLogger("mockapi"))

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger("appybrain-client", &buf)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("request_id", "r-1").Logger()
	child.Warn().Msg("from child")

	assert.NotSame(t, parent, child)
	entry := lastEntry(t, &buf)
	assert.Equal(t, "appybrain-client", entry["role"])
	assert.Equal(t, "r-1", entry["request_id"])
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("request_id", "r-2").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("scoped")

	assert.Equal(t, "r-2", lastEntry(t, &buf)["request_id"])
}

func TestFromRequest(t *testing.T) {
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("request_id", "r-3").Logger().WithContext(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("scoped")

	assert.Equal(t, "r-3", lastEntry(t, &buf)["request_id"])
}

func TestNewClientLogger_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	NewClientLogger("cli", path).Info().Msg("first")
	NewClientLogger("cli", path).Info().Msg("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.Equal(t, "cli", entry["role"])
	assert.Equal(t, "second", entry["message"])
}

func TestNewClientLogger_UnwritablePathFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")

	l := NewClientLogger("cli", path)

	require.NotNil(t, l)
	assert.NoFileExists(t, path)
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
