package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/pentomino/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, err := logging.New(false, path)
	require.NoError(t, err)

	logger.Info("game started", zap.String("game_id", "abc"))
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"game started"`)
	assert.Contains(t, string(data), `"game_id":"abc"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewDebugEnablesDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, err := logging.New(true, path)
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	logger.Debug("piece placed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "piece placed")
}
