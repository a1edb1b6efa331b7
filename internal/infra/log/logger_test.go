package logs

import (
	"context"
	"log/slog"
	"testing"

	"shamba/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string, debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Log.Level = level
	cfg.Env.Debug = debug

	return cfg
}

func TestNew_RespectsConfiguredLevel(t *testing.T) {
	logger, err := New(Params{Config: testConfig("warn", false)})

	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestNew_DebugModeForcesDebugLevel(t *testing.T) {
	logger, err := New(Params{Config: testConfig("error", true)})

	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New(Params{Config: testConfig("verbose", false)})

	assert.Error(t, err)
}
