package common

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/johncarney/manifest-sync/internal/logger"
)

// TestApplyLogLevel verifies override precedence and rejection of bad values.
func TestApplyLogLevel(t *testing.T) {
	previous := logger.Level()
	defer logger.SetLevel(previous)

	require.NoError(t, ApplyLogLevel("warn", "debug"))
	require.Equal(t, zapcore.DebugLevel, logger.Level())

	require.NoError(t, ApplyLogLevel("error", ""))
	require.Equal(t, zapcore.ErrorLevel, logger.Level())

	require.Error(t, ApplyLogLevel("warn", "loud"))
}
