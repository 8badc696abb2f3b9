package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvollmer/lanbridge/internal/domain"
)

// DefaultBlockSize is the read granularity used when the config does not
// set one. 64 KiB keeps block counts low without large buffers.
const DefaultBlockSize = 64 * 1024

// Config is the complete configuration for lanbridge
type Config struct {
	// BlockSize is the read granularity in bytes for file transfers
	BlockSize int `mapstructure:"block_size"`

	// DataDir holds the transfer journal; defaults to the user config dir
	DataDir string `mapstructure:"data_dir"`

	// Log configures logging output
	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures logging
type LogConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig configures the rotated log file
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks if the configuration is complete and consistent
func (c *Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block_size must be positive, got %d",
			domain.ErrConfigInvalid, c.BlockSize)
	}
	if c.Log.File.Enabled && c.Log.File.Path == "" {
		return fmt.Errorf("%w: log.file.enabled requires log.file.path",
			domain.ErrConfigInvalid)
	}
	return nil
}

// GetDataDir returns the configured data directory, falling back to the
// user config directory.
func (c *Config) GetDataDir() string {
	if c.DataDir != "" {
		return ExpandPath(c.DataDir)
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(configDir, "lanbridge")
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			if len(path) > 1 && (path[1] == '/' || path[1] == filepath.Separator) {
				path = filepath.Join(home, path[2:])
			} else if len(path) == 1 {
				path = home
			}
		}
	}
	path = os.ExpandEnv(path)
	return filepath.Clean(path)
}
