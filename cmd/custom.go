package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/cmd"
	cmdopts "github.com/mcp-hub/mcphub/internal/cmd/options"
	"github.com/mcp-hub/mcphub/internal/custom"
	errs "github.com/mcp-hub/mcphub/internal/errors"
	"github.com/mcp-hub/mcphub/internal/printer"
)

// CustomCmd groups the operations on user-authored server listings.
type CustomCmd struct {
	*cmd.BaseCmd
	Format cmd.OutputFormat

	opts cmdopts.CmdOptions
}

// NewCustomCmd creates the `mcphub custom` command group.
func NewCustomCmd(baseCmd *cmd.BaseCmd, opt ...cmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &CustomCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
		opts:    opts,
	}

	parent := &cobra.Command{
		Use:   "custom <command>",
		Short: "Manages your own custom server listings.",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists your custom servers.",
		RunE:  c.runList,
	}
	listCmd.Flags().Var(&c.Format, "format", fmt.Sprintf("output format, one of: %v", cmd.AllowedOutputFormats().String()))

	showCmd := &cobra.Command{
		Use:   "show <slug-or-id>",
		Short: "Shows one of your custom servers.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runShow,
	}
	showCmd.Flags().Var(&c.Format, "format", fmt.Sprintf("output format, one of: %v", cmd.AllowedOutputFormats().String()))

	addCmd, err := newCustomAddCmd(c)
	if err != nil {
		return nil, err
	}
	updateCmd, err := newCustomUpdateCmd(c)
	if err != nil {
		return nil, err
	}
	exportCmd, err := newCustomExportCmd(c)
	if err != nil {
		return nil, err
	}
	importCmd, err := newCustomImportCmd(c)
	if err != nil {
		return nil, err
	}

	parent.AddCommand(
		listCmd,
		showCmd,
		addCmd,
		updateCmd,
		exportCmd,
		importCmd,
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Deletes a custom server by id.",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runRemove,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Deletes every custom server.",
			RunE:  c.runClear,
		},
	)

	return parent, nil
}

// open loads the config and the custom collection.
func (c *CustomCmd) open() (*custom.Collection, error) {
	deps, err := loadDeps(c.opts)
	if err != nil {
		return nil, err
	}
	return c.opts.Collections.BuildCustom(deps.cfg)
}

func (c *CustomCmd) runList(cobraCmd *cobra.Command, args []string) error {
	collection, err := c.open()
	if err != nil {
		return err
	}

	p, err := printer.NewServerPrinter()
	if err != nil {
		return err
	}

	handler, err := cmd.NewHandler[catalog.Server](c.Format, cobraCmd.OutOrStdout(), p)
	if err != nil {
		return err
	}

	return handler.HandleResults(collection.All()...)
}

func (c *CustomCmd) runShow(cobraCmd *cobra.Command, args []string) error {
	collection, err := c.open()
	if err != nil {
		return err
	}

	server, ok := collection.BySlug(args[0])
	if !ok {
		server, ok = collection.ByID(args[0])
	}
	if !ok {
		return fmt.Errorf("%w: '%s'", errs.ErrServerNotFound, args[0])
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

func (c *CustomCmd) runRemove(cobraCmd *cobra.Command, args []string) error {
	collection, err := c.open()
	if err != nil {
		return err
	}

	if !collection.Delete(args[0]) {
		return fmt.Errorf("%w: '%s'", errs.ErrServerNotFound, args[0])
	}

	_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Deleted '%s' (%d remaining)\n", args[0], collection.Count())
	return err
}

func (c *CustomCmd) runClear(cobraCmd *cobra.Command, args []string) error {
	collection, err := c.open()
	if err != nil {
		return err
	}

	collection.Clear()
	_, err = fmt.Fprintln(cobraCmd.OutOrStdout(), "Cleared all custom servers")
	return err
}
