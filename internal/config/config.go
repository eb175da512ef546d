// Package config loads the optional mcphub application config file
// (.mcphub.toml). mcphub works with zero configuration; the file only
// overrides defaults such as the data directory or the default sort order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mcp-hub/mcphub/internal/catalog"
	errs "github.com/mcp-hub/mcphub/internal/errors"
)

// Config holds the user-adjustable application settings.
type Config struct {
	// DataDir overrides the directory holding the saved and custom
	// collections. Empty means the XDG user data directory.
	DataDir string `toml:"data_dir"`

	// DefaultSort overrides the ordering applied when no --sort flag is
	// given. Must be a valid sort key when set.
	DefaultSort string `toml:"default_sort"`

	// ServersFile points at a JSON document replacing the bundled servers
	// dataset. The document is validated on load like the bundled one.
	ServersFile string `toml:"servers_file"`

	// CategoriesFile points at a JSON document replacing the bundled
	// categories dataset.
	CategoriesFile string `toml:"categories_file"`

	// configFilePath tracks the file this config was loaded from, if any.
	configFilePath string
}

// Loader loads application configuration from a path.
type Loader interface {
	Load(path string) (*Config, error)
}

// DefaultLoader is the standard file-based Loader.
type DefaultLoader struct{}

// Load reads the config file at path. A missing file is not an error: the
// zero Config is returned so the CLI works without any setup. A file that
// exists but cannot be parsed or validated is an error.
func (d *DefaultLoader) Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", errs.ErrConfigLoadFailed)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("%w: failed to stat config file (%s): %w", errs.ErrConfigLoadFailed, path, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config from file (%s): %w", errs.ErrConfigLoadFailed, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: failed to validate config (%s): %w", errs.ErrConfigLoadFailed, path, err)
	}

	cfg.configFilePath = path

	return &cfg, nil
}

// Path returns the file this config was loaded from, or empty when defaults
// are in effect.
func (c *Config) Path() string {
	return c.configFilePath
}

func (c *Config) validate() error {
	if c.DefaultSort != "" {
		if _, err := catalog.ParseSortKey(c.DefaultSort); err != nil {
			return fmt.Errorf("default_sort: %w", err)
		}
	}

	for name, path := range map[string]string{
		"servers_file":    c.ServersFile,
		"categories_file": c.CategoriesFile,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}
