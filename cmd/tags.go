package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/cmd"
	cmdopts "github.com/mcp-hub/mcphub/internal/cmd/options"
	"github.com/mcp-hub/mcphub/internal/printer"
)

// TagsCmd lists every tag used across the catalog.
type TagsCmd struct {
	*cmd.BaseCmd
	Format cmd.OutputFormat

	opts cmdopts.CmdOptions
}

// NewTagsCmd creates the `mcphub tags` command.
func NewTagsCmd(baseCmd *cmd.BaseCmd, opt ...cmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &TagsCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
		opts:    opts,
	}

	cobraCommand := &cobra.Command{
		Use:   "tags",
		Short: "Lists every tag used by catalog servers, sorted.",
		RunE:  c.run,
	}

	cobraCommand.Flags().Var(&c.Format, "format", fmt.Sprintf("output format, one of: %v", cmd.AllowedOutputFormats().String()))

	return cobraCommand, nil
}

func (c *TagsCmd) run(cobraCmd *cobra.Command, args []string) error {
	cfg, err := c.opts.ConfigLoader.Load(configFilePath())
	if err != nil {
		return err
	}

	cat, err := c.opts.Catalog.BuildCatalog(cfg)
	if err != nil {
		return err
	}

	handler, err := cmd.NewHandler[string](c.Format, cobraCmd.OutOrStdout(), printer.NewTagPrinter())
	if err != nil {
		return err
	}

	return handler.HandleResults(cat.Tags()...)
}
