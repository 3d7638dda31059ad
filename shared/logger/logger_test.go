package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestComponent(t *testing.T) {
	defer Initialize("info", false)

	var buf bytes.Buffer
	InitializeWriter(&buf, "debug", true)
	Component("threadtree").Debug("built", "roots", 2)

	out := buf.String()
	assert.Contains(t, out, `"component":"threadtree"`)
	assert.Contains(t, out, `"roots":2`)
	assert.Contains(t, out, `"msg":"built"`)
}
