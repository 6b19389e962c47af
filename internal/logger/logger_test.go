package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	roles := []string{"library-catalog-server", "migrations", "catalogctl"}

	for _, role := range roles {
		t.Run(role, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(role)
			require.NotNil(t, l)
			l.Logger = l.Output(&buf)

			l.Info().Msg("book added")

			entry := decodeEntry(t, &buf)
			assert.Equal(t, role, entry["role"])
			assert.Equal(t, "book added", entry["message"])
			assert.Contains(t, entry, zerolog.TimestampFieldName)
			assert.Contains(t, entry, "func")
		})
	}
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	NewLogger("library-catalog-server")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Error().Msg("database error adding book")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("library-catalog-server")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("route", "/api/books").Logger()
	child.Info().Msg("child entry")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "library-catalog-server", entry["role"])
	assert.Equal(t, "/api/books", entry["route"])

	buf.Reset()
	parent.Info().Msg("parent entry")
	assert.NotContains(t, decodeEntry(t, &buf), "route")
}

func TestFromContextAndRequest(t *testing.T) {
	tests := []struct {
		name string
		get  func(ctx context.Context) *Logger
	}{
		{
			name: "context",
			get:  FromContext,
		},
		{
			name: "request",
			get: func(ctx context.Context) *Logger {
				req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
				return FromRequest(req.WithContext(ctx))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" without attached logger", func(t *testing.T) {
			assert.NotNil(t, tt.get(context.Background()))
		})

		t.Run(tt.name+" with attached logger", func(t *testing.T) {
			var buf bytes.Buffer
			zl := zerolog.New(&buf).With().Str("trace_id", "abc-123").Logger()

			l := tt.get(zl.WithContext(context.Background()))
			require.NotNil(t, l)
			l.Info().Msg("request scoped")

			assert.Equal(t, "abc-123", decodeEntry(t, &buf)["trace_id"])
		})
	}
}

func TestNewCLILogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewCLILogger("catalogctl", &buf, tt.verbose)

			l.Debug().Msg("debug entry")
			l.Warn().Msg("warn entry")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug entry"))
			assert.Contains(t, out, "warn entry")
			assert.Contains(t, out, "role=catalogctl")
		})
	}
}
