package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type syncBuffer struct {
	bytes.Buffer
}

func (b *syncBuffer) Sync() error { return nil }

func TestNewJSONAndConsole(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		logger, err := New(Config{Format: format, Level: "info"})
		require.NoError(t, err)
		require.NotNil(t, logger)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Format: "json", Level: "not-a-level"})
	assert.Error(t, err)
}

func TestNewWritesToConfiguredOutput(t *testing.T) {
	var buf syncBuffer
	logger, err := New(Config{Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)

	logger.Info("hello", zap.String("k", "v"))
	assert.True(t, strings.Contains(buf.String(), "hello"))
	assert.True(t, strings.Contains(buf.String(), `"k":"v"`))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.Level)
}
