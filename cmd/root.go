// Package cmd wires up the mcphub CLI: a browser for a bundled catalog of
// MCP server listings, with bookmarking, user-authored listings and install
// configuration generation.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/cmd"
	cmdopts "github.com/mcp-hub/mcphub/internal/cmd/options"
	"github.com/mcp-hub/mcphub/internal/config"
	"github.com/mcp-hub/mcphub/internal/files"
	"github.com/mcp-hub/mcphub/internal/flags"
)

// cmdOption aliases the injectable command option type for brevity.
type cmdOption = cmdopts.CmdOption

var version = "dev" // Set at build time using -ldflags

// Execute runs the root command.
func Execute() error {
	// Optional .env support for the MCPHUB_* variables.
	_ = godotenv.Load()

	logger, err := configureLogger()
	if err != nil {
		return err
	}

	rootCmd, err := NewRootCmd(logger)
	if err != nil {
		return err
	}

	return rootCmd.Execute()
}

// NewRootCmd constructs the root command and registers every subcommand.
func NewRootCmd(logger hclog.Logger) (*cobra.Command, error) {
	baseCmd := &cmd.BaseCmd{}
	baseCmd.SetLogger(logger)

	rootCmd := &cobra.Command{
		Use:          "mcphub <command> [args]",
		Short:        "Browse, bookmark and author MCP server listings.",
		Long:         longDescription(),
		SilenceUsage: true,
		Version:      version,
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	commands := []func(*cmd.BaseCmd, ...cmdOption) (*cobra.Command, error){
		NewListCmd,
		NewInfoCmd,
		NewCategoriesCmd,
		NewTagsCmd,
		NewConfigCmd,
		NewSavedCmd,
		NewCustomCmd,
	}

	for _, build := range commands {
		c, err := build(baseCmd)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(c)
	}

	return rootCmd, nil
}

func longDescription() string {
	return `mcphub is a catalog browser for MCP (Model Context Protocol) server listings.

Browse and filter the bundled catalog, bookmark servers you care about, author
and share your own custom listings, and generate Claude Desktop configuration
snippets for any listing.`
}

// configFilePath resolves the config file location. An explicit --config-file
// flag or MCPHUB_CONFIG_FILE value wins, then a .mcphub.toml in the working
// directory, then config.toml under the XDG config directory.
func configFilePath() string {
	if flags.ConfigFile != "" && flags.ConfigFile != flags.DefaultConfigFile {
		return flags.ConfigFile
	}

	if _, err := os.Stat(flags.DefaultConfigFile); err == nil {
		return flags.DefaultConfigFile
	}

	if dir, err := files.UserSpecificConfigDir(); err == nil {
		return filepath.Join(dir, "config.toml")
	}

	return flags.DefaultConfigFile
}

// cmdDeps bundles the per-invocation dependencies shared by subcommands.
type cmdDeps struct {
	cfg *config.Config
}

// loadDeps resolves the application config through the injected loader.
func loadDeps(opts cmdopts.CmdOptions) (*cmdDeps, error) {
	cfg, err := opts.ConfigLoader.Load(configFilePath())
	if err != nil {
		return nil, err
	}
	return &cmdDeps{cfg: cfg}, nil
}

// configureLogger builds the process logger from the environment. Logging is
// disabled unless MCPHUB_LOG_PATH points at a writable file.
func configureLogger() (hclog.Logger, error) {
	logPath := strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))

	logOutput := io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		logOutput = f
	}

	logLevel := strings.TrimSpace(os.Getenv(flags.EnvVarLogLevel))
	if logLevel == "" {
		logLevel = flags.DefaultLogLevel
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "mcphub",
		Level:  hclog.LevelFromString(logLevel),
		Output: logOutput,
	}), nil
}
