package logger

import (
	"bytes"
	"strings"
	"testing"

	charm "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected charm.Level
		wantErr  bool
	}{
		{name: "empty defaults to info", input: "", expected: charm.InfoLevel},
		{name: "debug", input: "debug", expected: charm.DebugLevel},
		{name: "info", input: "info", expected: charm.InfoLevel},
		{name: "warn", input: "warn", expected: charm.WarnLevel},
		{name: "error", input: "error", expected: charm.ErrorLevel},
		{name: "invalid", input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestDefaultAndSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	logger := NewLogger(charm.New(&buf))
	SetDefault(logger)

	assert.Same(t, logger, Default())

	Info("polling task", "attempt", 3)
	assert.Contains(t, buf.String(), "polling task")
	assert.Contains(t, buf.String(), "attempt")
}

func TestSetDefaultIgnoresNil(t *testing.T) {
	original := Default()
	SetDefault(nil)
	assert.Same(t, original, Default())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(charm.New(&buf))
	logger.SetLevel(charm.WarnLevel)

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, "visible")
}
