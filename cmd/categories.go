package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/cmd"
	cmdopts "github.com/mcp-hub/mcphub/internal/cmd/options"
	"github.com/mcp-hub/mcphub/internal/printer"
)

// CategoriesCmd lists the catalog categories with their server counts.
type CategoriesCmd struct {
	*cmd.BaseCmd
	Format cmd.OutputFormat

	opts cmdopts.CmdOptions
}

// NewCategoriesCmd creates the `mcphub categories` command.
func NewCategoriesCmd(baseCmd *cmd.BaseCmd, opt ...cmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &CategoriesCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
		opts:    opts,
	}

	cobraCommand := &cobra.Command{
		Use:   "categories",
		Short: "Lists catalog categories with their server counts.",
		RunE:  c.run,
	}

	cobraCommand.Flags().Var(&c.Format, "format", fmt.Sprintf("output format, one of: %v", cmd.AllowedOutputFormats().String()))

	return cobraCommand, nil
}

func (c *CategoriesCmd) run(cobraCmd *cobra.Command, args []string) error {
	cfg, err := c.opts.ConfigLoader.Load(configFilePath())
	if err != nil {
		return err
	}

	cat, err := c.opts.Catalog.BuildCatalog(cfg)
	if err != nil {
		return err
	}

	handler, err := cmd.NewHandler[catalog.Category](c.Format, cobraCmd.OutOrStdout(), printer.NewCategoryPrinter())
	if err != nil {
		return err
	}

	return handler.HandleResults(cat.CategoriesWithCounts()...)
}
