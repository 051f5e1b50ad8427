package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("Text Renames Error Key", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, slog.LevelInfo, "text")
		logger.Info("failed", "error", errors.New("boom"))
		assert.Contains(t, buf.String(), "err=boom")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, slog.LevelInfo, "JSON")
		logger.Info("hello", "step", 2)
		assert.Contains(t, buf.String(), `"step":2`)
	})

	t.Run("Level Filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, slog.LevelWarn, "text")
		logger.Info("quiet")
		assert.Empty(t, buf.String())
	})
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		t.Run(in, func(t *testing.T) {
			got, err := ParseLevel(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
