package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{"JSON output mode", true},
		{"Console output mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = !tt.jsonOutput

			require.NoError(t, Initialize(tt.jsonOutput, VerbosityInfo))
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
		})
	}
}

func TestInitializeWithWriterRespectsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, VerbosityUser)

	Infow("hidden at user verbosity")
	Warnw("shown", FieldCode, "intp")
	Cleanup()

	out := buf.String()
	assert.NotContains(t, out, "hidden at user verbosity")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "intp")
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, VerbosityDebug)

	Named("server").Debugw("derived", FieldCode, "esfp")
	assert.Contains(t, buf.String(), "server")
	assert.Contains(t, buf.String(), "esfp")
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(3))
}
