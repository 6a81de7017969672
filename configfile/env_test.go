package configfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_OverridesDefaultsFromNamedVariables(t *testing.T) {
	t.Setenv("MAX_EVENT_TYPES", "128")
	t.Setenv("MAX_SUBSCRIBERS", "8")
	t.Setenv("ASYNC_QUEUE_CAPACITY", "64")
	t.Setenv("THREADING_ENABLED", "false")
	t.Setenv("DEBUG_LOG", "true")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.MaxEventTypes)
	assert.Equal(t, 8, cfg.MaxSubscribers)
	assert.Equal(t, 64, cfg.AsyncQueueCapacity)
	assert.False(t, cfg.ThreadingEnabled)
	assert.True(t, cfg.DebugLog)
}

func TestLoadEnv_LeavesDefaultsWhenUnset(t *testing.T) {
	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxEventTypes)
	assert.Equal(t, 16, cfg.MaxSubscribers)
	assert.Equal(t, 32, cfg.AsyncQueueCapacity)
	assert.True(t, cfg.ThreadingEnabled)
	assert.False(t, cfg.DebugLog)
}

func TestLoadEnv_RejectsUncastableValue(t *testing.T) {
	t.Setenv("MAX_EVENT_TYPES", "not-a-number")
	_, err := LoadEnv()
	assert.Error(t, err)
}

func TestLoadEnv_RejectsInvalidResultingConfig(t *testing.T) {
	t.Setenv("MAX_SUBSCRIBERS", "0")
	_, err := LoadEnv()
	assert.Error(t, err)
}
