package obs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, ResolveLogLevel(false, false))
	assert.Equal(t, slog.LevelDebug, ResolveLogLevel(true, false))
	assert.Equal(t, slog.LevelError, ResolveLogLevel(false, true))
}

func TestResolveLogLevelDebugEnvWins(t *testing.T) {
	t.Setenv("HARVESTCX_DEBUG", "1")
	assert.Equal(t, slog.LevelDebug, ResolveLogLevel(false, true))
}

func TestSetupLoggingWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingWithWriter(slog.LevelInfo, "json", &buf)
	slog.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestSetupLoggingWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingWithWriter(slog.LevelInfo, "text", &buf)
	slog.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingWithWriter(slog.LevelInfo, "text", &buf)
	NewLogger("walker").Info("scanning")
	assert.Contains(t, buf.String(), "component=walker")
}
