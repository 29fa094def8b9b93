package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/percolate/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{" error ", slog.LevelError, true},
		{"trace", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, ok := logging.ParseLevel(tc.in)
		assert.Equal(t, tc.want, got, "level %q", tc.in)
		assert.Equal(t, tc.ok, ok, "level %q", tc.in)
	}
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logging.NewLogger("info", "json", &buf).Info("hello", "n", 3)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"n":3`)

	buf.Reset()
	logging.NewLogger("info", "text", &buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewLogger("warn", "text", &buf)
	log.Info("dropped")
	log.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
