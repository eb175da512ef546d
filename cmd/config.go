package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/cmd"
	cmdopts "github.com/mcp-hub/mcphub/internal/cmd/options"
	errs "github.com/mcp-hub/mcphub/internal/errors"
)

// ConfigCmd prints the Claude Desktop configuration snippet for a server.
type ConfigCmd struct {
	*cmd.BaseCmd

	opts cmdopts.CmdOptions
}

// NewConfigCmd creates the `mcphub config` command.
func NewConfigCmd(baseCmd *cmd.BaseCmd, opt ...cmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ConfigCmd{
		BaseCmd: baseCmd,
		opts:    opts,
	}

	cobraCommand := &cobra.Command{
		Use:   "config <slug-or-id>",
		Short: "Prints the Claude Desktop config snippet for a server.",
		Long: `Prints the mcpServers configuration envelope for a single server,
ready to paste into Claude Desktop's configuration file. Works for catalog
servers and for your custom listings.`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}

	return cobraCommand, nil
}

func (c *ConfigCmd) run(cobraCmd *cobra.Command, args []string) error {
	key := strings.TrimSpace(args[0])
	if key == "" {
		return fmt.Errorf("slug or id is required and cannot be empty")
	}

	cfg, err := c.opts.ConfigLoader.Load(configFilePath())
	if err != nil {
		return err
	}

	cat, err := c.opts.Catalog.BuildCatalog(cfg)
	if err != nil {
		return err
	}

	server, ok := cat.ServerBySlug(key)
	if !ok {
		server, ok = cat.ServerByID(key)
	}
	if !ok {
		customs, err := c.opts.Collections.BuildCustom(cfg)
		if err != nil {
			return err
		}
		server, ok = customs.BySlug(key)
		if !ok {
			server, ok = customs.ByID(key)
		}
	}
	if !ok {
		return fmt.Errorf("%w: '%s'", errs.ErrServerNotFound, key)
	}

	snippet, err := catalog.GenerateClaudeConfig(server)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "%s\n", snippet)
	return err
}
