package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false, "info")
	log.Debug("hidden")
	log.Info("resolved arguments", "variant", "Basic")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "variant=Basic")
	assert.NotContains(t, out, "time=")

	buf.Reset()
	newLogger(&buf, true, "error").Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
