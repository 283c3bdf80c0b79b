package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "items.bin", cfg.DataFile)
	assert.NotEmpty(t, cfg.LogDir)
	assert.Equal(t, "id", cfg.DefaultSort.Key)
	assert.True(t, cfg.DefaultSort.Ascending)
	assert.False(t, cfg.Debug)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `data_file: /tmp/custom.bin
debug: true
default_sort:
  key: date
  ascending: false
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.bin", cfg.DataFile)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "date", cfg.DefaultSort.Key)
	assert.False(t, cfg.DefaultSort.Ascending)

	// Unset keys keep their defaults.
	assert.NotEmpty(t, cfg.LogDir)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{name: "defaults pass", mutate: func(c *Config) {}},
		{name: "empty data file refilled", mutate: func(c *Config) { c.DataFile = "" }},
		{name: "empty sort key refilled", mutate: func(c *Config) { c.DefaultSort.Key = "" }},
		{name: "every valid sort key", mutate: func(c *Config) { c.DefaultSort.Key = "status" }},
		{name: "unknown sort key", mutate: func(c *Config) { c.DefaultSort.Key = "color" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.DataFile)
			assert.NotEmpty(t, cfg.DefaultSort.Key)
		})
	}
}
