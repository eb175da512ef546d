// Package cmd provides shared infrastructure for mcphub CLI commands:
// the base command with its logger and builders, and output format handling.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/config"
	"github.com/mcp-hub/mcphub/internal/custom"
	"github.com/mcp-hub/mcphub/internal/flags"
	"github.com/mcp-hub/mcphub/internal/saved"
	"github.com/mcp-hub/mcphub/internal/store"
)

// CatalogBuilder constructs the loaded catalog for a command.
type CatalogBuilder interface {
	BuildCatalog(cfg *config.Config) (*catalog.Catalog, error)
}

// CollectionsBuilder constructs the user collections for a command.
type CollectionsBuilder interface {
	BuildSaved(cfg *config.Config) (*saved.Collection, error)
	BuildCustom(cfg *config.Config) (*custom.Collection, error)
}

// BaseCmd carries the pieces every command needs.
type BaseCmd struct {
	logger hclog.Logger
}

// SetLogger updates the command's logger.
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the current logger for the command, constructing a fallback
// from flags and environment when none was injected.
func (c *BaseCmd) Logger() hclog.Logger {
	if c.logger != nil {
		return c.logger
	}

	logLevel := flags.LogLevel
	if logLevel == "" {
		logLevel = strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
		if logLevel == "" {
			logLevel = flags.DefaultLogLevel
		}
	}

	logPath := flags.LogPath
	if logPath == "" {
		logPath = strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))
	}

	var output io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file (%s): %v, logging disabled\n", logPath, err)
		} else {
			output = f
		}
	}

	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "mcphub",
		Level:  hclog.LevelFromString(logLevel),
		Output: output,
	})

	return c.logger
}

// BuildCatalog loads the catalog, honoring dataset overrides from the config.
func (c *BaseCmd) BuildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var opts []catalog.Option

	if cfg != nil && cfg.ServersFile != "" {
		data, err := os.ReadFile(cfg.ServersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read servers dataset (%s): %w", cfg.ServersFile, err)
		}
		opts = append(opts, catalog.WithServersData(data))
	}

	if cfg != nil && cfg.CategoriesFile != "" {
		data, err := os.ReadFile(cfg.CategoriesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read categories dataset (%s): %w", cfg.CategoriesFile, err)
		}
		opts = append(opts, catalog.WithCategoriesData(data))
	}

	return catalog.Load(c.Logger(), opts...)
}

// BuildSaved opens the saved-servers collection, honoring the config data dir.
func (c *BaseCmd) BuildSaved(cfg *config.Config) (*saved.Collection, error) {
	return saved.New(c.Logger(), c.storeOptions(cfg)...)
}

// BuildCustom opens the custom-servers collection, honoring the config data dir.
func (c *BaseCmd) BuildCustom(cfg *config.Config) (*custom.Collection, error) {
	return custom.New(c.Logger(), c.storeOptions(cfg)...)
}

func (c *BaseCmd) storeOptions(cfg *config.Config) []store.Option {
	if cfg == nil || cfg.DataDir == "" {
		return nil
	}
	return []store.Option{store.WithDirectory(cfg.DataDir)}
}
