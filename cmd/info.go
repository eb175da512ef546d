package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/cmd"
	cmdopts "github.com/mcp-hub/mcphub/internal/cmd/options"
	errs "github.com/mcp-hub/mcphub/internal/errors"
	"github.com/mcp-hub/mcphub/internal/printer"
)

// InfoCmd shows the full record for a single server, looked up by slug or id
// across the catalog and the user's custom collection.
type InfoCmd struct {
	*cmd.BaseCmd
	Format cmd.OutputFormat

	opts cmdopts.CmdOptions
}

// NewInfoCmd creates the `mcphub info` command.
func NewInfoCmd(baseCmd *cmd.BaseCmd, opt ...cmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InfoCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
		opts:    opts,
	}

	cobraCommand := &cobra.Command{
		Use:   "info <slug-or-id>",
		Short: "Shows the full listing for a single server.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	cobraCommand.Flags().Var(&c.Format, "format", fmt.Sprintf("output format, one of: %v", cmd.AllowedOutputFormats().String()))

	return cobraCommand, nil
}

func (c *InfoCmd) run(cobraCmd *cobra.Command, args []string) error {
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

	p, err := printer.NewServerPrinter(printer.WithDetails(true))
	if err != nil {
		return err
	}

	handler, err := cmd.NewHandler[catalog.Server](c.Format, cobraCmd.OutOrStdout(), p)
	if err != nil {
		return err
	}

	return handler.HandleResult(server)
}
