package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PENGUINS_CSV_PATH", "PRINT_RECORDS", "LOG_PREFIX", "LOG_FLAGS"} {
		t.Setenv(key, "")
	}
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, DefaultDataFilePath, cfg.DataFilePath)
		assert.True(t, cfg.PrintRecords)
		assert.Equal(t, "", cfg.LogPrefix)
		assert.Equal(t, 0, cfg.LogFlags)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PENGUINS_CSV_PATH", "/data/penguins.csv")
		t.Setenv("PRINT_RECORDS", "false")
		t.Setenv("LOG_PREFIX", "penguins ")
		t.Setenv("LOG_FLAGS", "3")

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, "/data/penguins.csv", cfg.DataFilePath)
		assert.False(t, cfg.PrintRecords)
		assert.Equal(t, "penguins ", cfg.LogPrefix)
		assert.Equal(t, 3, cfg.LogFlags)
	})

	t.Run("invalid boolean", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PRINT_RECORDS", "sometimes")

		cfg, err := New()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "PRINT_RECORDS")
	})

	t.Run("invalid integer", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_FLAGS", "abc")

		cfg, err := New()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "LOG_FLAGS")
	})
}
