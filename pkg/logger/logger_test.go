package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpersUsableBeforeSetup(t *testing.T) {
	// The helpers must never panic in a process that hasn't called Setup
	require.NotNil(t, Log)

	Info("info before setup")
	Warn("warn before setup", "key", "value")
	Error("error before setup")
	Debug("debug before setup")
}

func TestSetupSelectsHandlerByEnvironment(t *testing.T) {
	Setup("production")
	_, ok := Log.Handler().(*slog.JSONHandler)
	assert.True(t, ok, "production should log JSON")

	Setup("development")
	_, ok = Log.Handler().(*slog.TextHandler)
	assert.True(t, ok, "development should log text")
}
