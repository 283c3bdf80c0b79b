// Package config loads the application configuration. Settings come from an
// optional YAML file with sensible defaults for everything, so a missing file
// is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the data file created next to wherever the app runs
// when no explicit path is configured.
const DefaultFileName = "items.bin"

// Config holds all user-tunable settings.
type Config struct {
	// DataFile is the path of the binary items file.
	DataFile string `yaml:"data_file"`

	// LogDir is where session log files are written.
	LogDir string `yaml:"log_dir"`

	// Debug enables debug-level log entries.
	Debug bool `yaml:"debug"`

	// DefaultSort preselects the key and direction on the sort screen.
	DefaultSort SortConfig `yaml:"default_sort"`
}

// SortConfig names a sort key and direction.
type SortConfig struct {
	Key       string `yaml:"key"`
	Ascending bool   `yaml:"ascending"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultFileName,
		LogDir:   filepath.Join(appDir(), "logs"),
		DefaultSort: SortConfig{
			Key:       "id",
			Ascending: true,
		},
	}
}

// DefaultPath returns the standard config file location,
// ~/.lostandfound/config.yaml.
func DefaultPath() string {
	return filepath.Join(appDir(), "config.yaml")
}

func appDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lostandfound"
	}
	return filepath.Join(home, ".lostandfound")
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the plain defaults; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks field values and fills empty ones with defaults.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		c.DataFile = DefaultFileName
	}
	if c.LogDir == "" {
		c.LogDir = filepath.Join(appDir(), "logs")
	}

	switch c.DefaultSort.Key {
	case "":
		c.DefaultSort.Key = "id"
	case "id", "name", "category", "date", "status":
	default:
		return fmt.Errorf("invalid default_sort key: %s (must be 'id', 'name', 'category', 'date', or 'status')", c.DefaultSort.Key)
	}
	return nil
}
