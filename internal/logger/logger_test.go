package logger_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/themec/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to info", func(t *testing.T) {
		t.Parallel()

		l, err := logger.New(&bytes.Buffer{}, "")

		require.NoError(t, err)
		assert.Equal(t, log.InfoLevel, l.GetLevel())
	})

	t.Run("parses level case-insensitively", func(t *testing.T) {
		t.Parallel()

		l, err := logger.New(&bytes.Buffer{}, "DEBUG")

		require.NoError(t, err)
		assert.Equal(t, log.DebugLevel, l.GetLevel())
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := logger.New(&bytes.Buffer{}, "chatty")

		assert.Error(t, err)
	})

	t.Run("filters below level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l, err := logger.New(&buf, "warn")
		require.NoError(t, err)

		l.Info("hidden")
		l.Warn("shown", "theme", "dark")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "theme=dark")
	})
}

func TestWithPrefix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := logger.New(&buf, "info")
	require.NoError(t, err)

	logger.WithPrefix(l, "encoder").Info("hello")

	assert.Contains(t, buf.String(), "encoder")
}
