package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/cmd"
	cmdopts "github.com/mcp-hub/mcphub/internal/cmd/options"
	"github.com/mcp-hub/mcphub/internal/printer"
)

// ListCmd lists catalog servers matching the given filters.
type ListCmd struct {
	*cmd.BaseCmd
	Search   string
	Category string
	Type     string
	Source   string
	Tags     []string
	Verified string
	Sort     string
	Format   cmd.OutputFormat

	opts cmdopts.CmdOptions
}

// NewListCmd creates the `mcphub list` command.
func NewListCmd(baseCmd *cmd.BaseCmd, opt ...cmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ListCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
		opts:    opts,
	}

	cobraCommand := &cobra.Command{
		Use:   "list",
		Short: "Lists catalog servers, optionally filtered and sorted.",
		Long: `Lists the servers in the catalog. All filters are combined with AND:
--search matches name, description or any tag; repeated --tag flags require
every given tag to be present.`,
		RunE: c.run,
	}

	fs := cobraCommand.Flags()
	fs.StringVar(&c.Search, "search", "", "free text search over name, description and tags")
	fs.StringVar(&c.Category, "category", "", "restrict to a category id")
	fs.StringVar(&c.Type, "type", "", "restrict to a transport type (stdio, http, sse)")
	fs.StringVar(&c.Source, "source", "", "restrict to a listing source (official, community, custom)")
	fs.StringArrayVar(&c.Tags, "tag", nil, "require a tag (can be repeated)")
	fs.StringVar(&c.Verified, "verified", "", "restrict to verified (true) or unverified (false) listings")
	fs.StringVar(&c.Sort, "sort", "", "sort order: name, stars, downloads or featured")
	fs.Var(&c.Format, "format", fmt.Sprintf("output format, one of: %v", cmd.AllowedOutputFormats().String()))

	return cobraCommand, nil
}

// spec converts the flag values into a catalog filter specification.
func (c *ListCmd) spec() (catalog.FilterSpec, error) {
	spec := catalog.FilterSpec{
		Search: c.Search,
		Tags:   c.Tags,
	}

	if c.Category != "" {
		spec.Category = &c.Category
	}

	if c.Type != "" {
		t := catalog.ServerType(strings.ToLower(c.Type))
		if !t.Valid() {
			return catalog.FilterSpec{}, fmt.Errorf("invalid type '%s', must be one of: stdio, http, sse", c.Type)
		}
		spec.Type = &t
	}

	if c.Source != "" {
		src := catalog.Source(strings.ToLower(c.Source))
		if !src.Valid() {
			return catalog.FilterSpec{}, fmt.Errorf("invalid source '%s', must be one of: official, community, custom", c.Source)
		}
		spec.Source = &src
	}

	if c.Verified != "" {
		v, err := strconv.ParseBool(c.Verified)
		if err != nil {
			return catalog.FilterSpec{}, fmt.Errorf("invalid --verified value '%s', must be true or false", c.Verified)
		}
		spec.Verified = &v
	}

	return spec, nil
}

func (c *ListCmd) run(cobraCmd *cobra.Command, args []string) error {
	cfg, err := c.opts.ConfigLoader.Load(configFilePath())
	if err != nil {
		return err
	}

	cat, err := c.opts.Catalog.BuildCatalog(cfg)
	if err != nil {
		return err
	}

	spec, err := c.spec()
	if err != nil {
		return err
	}

	sortFlag := c.Sort
	if sortFlag == "" {
		sortFlag = cfg.DefaultSort
	}
	sortKey, err := catalog.ParseSortKey(sortFlag)
	if err != nil {
		return err
	}

	results := catalog.Sort(cat.Filter(spec), sortKey)

	p, err := printer.NewServerPrinter()
	if err != nil {
		return err
	}

	handler, err := cmd.NewHandler[catalog.Server](c.Format, cobraCmd.OutOrStdout(), p)
	if err != nil {
		return err
	}

	return handler.HandleResults(results...)
}
