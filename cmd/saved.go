package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/cmd"
	cmdopts "github.com/mcp-hub/mcphub/internal/cmd/options"
	errs "github.com/mcp-hub/mcphub/internal/errors"
	"github.com/mcp-hub/mcphub/internal/printer"
	"github.com/mcp-hub/mcphub/internal/saved"
)

// SavedCmd groups the bookmark operations.
type SavedCmd struct {
	*cmd.BaseCmd
	Format cmd.OutputFormat

	opts cmdopts.CmdOptions
}

// NewSavedCmd creates the `mcphub saved` command group.
func NewSavedCmd(baseCmd *cmd.BaseCmd, opt ...cmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &SavedCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
		opts:    opts,
	}

	parent := &cobra.Command{
		Use:   "saved <command>",
		Short: "Manages your bookmarked servers.",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists your bookmarked servers.",
		RunE:  c.runList,
	}
	listCmd.Flags().Var(&c.Format, "format", fmt.Sprintf("output format, one of: %v", cmd.AllowedOutputFormats().String()))

	parent.AddCommand(
		listCmd,
		&cobra.Command{
			Use:   "add <server-id>",
			Short: "Bookmarks a server by id. Saving twice is a no-op.",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runAdd,
		},
		&cobra.Command{
			Use:   "remove <server-id>",
			Short: "Removes a bookmark. Unknown ids are a no-op.",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runRemove,
		},
		&cobra.Command{
			Use:   "toggle <server-id>",
			Short: "Toggles the bookmark for a server.",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runToggle,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Removes every bookmark.",
			RunE:  c.runClear,
		},
	)

	return parent, nil
}

// open loads the config and the saved collection.
func (c *SavedCmd) open() (*saved.Collection, *cmdDeps, error) {
	deps, err := loadDeps(c.opts)
	if err != nil {
		return nil, nil, err
	}

	collection, err := c.opts.Collections.BuildSaved(deps.cfg)
	if err != nil {
		return nil, nil, err
	}

	return collection, deps, nil
}

func (c *SavedCmd) runList(cobraCmd *cobra.Command, args []string) error {
	collection, deps, err := c.open()
	if err != nil {
		return err
	}

	cat, err := c.opts.Catalog.BuildCatalog(deps.cfg)
	if err != nil {
		return err
	}

	p, err := printer.NewSavedPrinter()
	if err != nil {
		return err
	}

	handler, err := cmd.NewHandler[saved.Server](c.Format, cobraCmd.OutOrStdout(), p)
	if err != nil {
		return err
	}

	return handler.HandleResults(collection.List(cat)...)
}

func (c *SavedCmd) runAdd(cobraCmd *cobra.Command, args []string) error {
	collection, deps, err := c.open()
	if err != nil {
		return err
	}

	id := args[0]
	cat, err := c.opts.Catalog.BuildCatalog(deps.cfg)
	if err != nil {
		return err
	}
	if _, ok := cat.ServerByID(id); !ok {
		return fmt.Errorf("%w: '%s'", errs.ErrServerNotFound, id)
	}

	collection.Save(id)
	_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Saved '%s' (%d total)\n", id, collection.Count())
	return err
}

func (c *SavedCmd) runRemove(cobraCmd *cobra.Command, args []string) error {
	collection, _, err := c.open()
	if err != nil {
		return err
	}

	collection.Unsave(args[0])
	_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Removed '%s' (%d total)\n", args[0], collection.Count())
	return err
}

func (c *SavedCmd) runToggle(cobraCmd *cobra.Command, args []string) error {
	collection, _, err := c.open()
	if err != nil {
		return err
	}

	if collection.Toggle(args[0]) {
		_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Saved '%s'\n", args[0])
	} else {
		_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Removed '%s'\n", args[0])
	}
	return err
}

func (c *SavedCmd) runClear(cobraCmd *cobra.Command, args []string) error {
	collection, _, err := c.open()
	if err != nil {
		return err
	}

	collection.Clear()
	_, err = fmt.Fprintln(cobraCmd.OutOrStdout(), "Cleared all saved servers")
	return err
}
