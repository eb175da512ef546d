package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/custom"
)

// customFields holds the flag values shared by `custom add` and `custom update`.
type customFields struct {
	Name          string
	Description   string
	Type          string
	Command       string
	Args          []string
	URL           string
	Category      string
	Tags          []string
	Repository    string
	Documentation string
}

func (f *customFields) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.Name, "name", "", "display name")
	fs.StringVar(&f.Description, "description", "", "short description")
	fs.StringVar(&f.Type, "type", "", "transport type (stdio, http, sse)")
	fs.StringVar(&f.Command, "command", "", "subprocess command (stdio servers)")
	fs.StringArrayVar(&f.Args, "arg", nil, "subprocess argument (can be repeated)")
	fs.StringVar(&f.URL, "url", "", "endpoint address (http/sse servers)")
	fs.StringVar(&f.Category, "category", "", "category id")
	fs.StringArrayVar(&f.Tags, "tag", nil, "tag (can be repeated)")
	fs.StringVar(&f.Repository, "repository", "", "source repository URL")
	fs.StringVar(&f.Documentation, "documentation", "", "documentation URL")
}

func (f *customFields) serverType() (catalog.ServerType, error) {
	t := catalog.ServerType(strings.ToLower(strings.TrimSpace(f.Type)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid type '%s', must be one of: stdio, http, sse", f.Type)
	}
	return t, nil
}

func newCustomAddCmd(c *CustomCmd) (*cobra.Command, error) {
	fields := &customFields{}

	cobraCommand := &cobra.Command{
		Use:   "add",
		Short: "Creates a custom server listing.",
		Long: `Creates a custom server listing. The id and slug are generated from the
name, install commands are derived from --command, and the Claude config is
derived from the transport type.`,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			t, err := fields.serverType()
			if err != nil {
				return err
			}

			collection, err := c.open()
			if err != nil {
				return err
			}

			server := collection.Add(custom.Input{
				Name:          fields.Name,
				Description:   fields.Description,
				Type:          t,
				Command:       fields.Command,
				Args:          fields.Args,
				URL:           fields.URL,
				Category:      fields.Category,
				Tags:          fields.Tags,
				Repository:    fields.Repository,
				Documentation: fields.Documentation,
			})

			_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Created '%s' (id: %s, slug: %s)\n", server.Name, server.ID, server.Slug)
			return err
		},
	}

	fields.register(cobraCommand.Flags())

	for _, required := range []string{"name", "type", "category"} {
		if err := cobraCommand.MarkFlagRequired(required); err != nil {
			return nil, err
		}
	}

	return cobraCommand, nil
}

func newCustomUpdateCmd(c *CustomCmd) (*cobra.Command, error) {
	fields := &customFields{}

	cobraCommand := &cobra.Command{
		Use:   "update <id>",
		Short: "Updates fields of a custom server listing.",
		Long: `Updates a custom server listing. Only the flags you pass change; a new
--name regenerates the slug, and changing --command, --arg or --url
regenerates the Claude config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			collection, err := c.open()
			if err != nil {
				return err
			}

			patch := custom.Patch{}
			fs := cobraCmd.Flags()

			if fs.Changed("name") {
				patch.Name = &fields.Name
			}
			if fs.Changed("description") {
				patch.Description = &fields.Description
			}
			if fs.Changed("type") {
				t, err := fields.serverType()
				if err != nil {
					return err
				}
				patch.Type = &t
			}
			if fs.Changed("command") {
				patch.Command = &fields.Command
			}
			if fs.Changed("arg") {
				patch.Args = fields.Args
			}
			if fs.Changed("url") {
				patch.URL = &fields.URL
			}
			if fs.Changed("category") {
				patch.Category = &fields.Category
			}
			if fs.Changed("tag") {
				patch.Tags = fields.Tags
			}
			if fs.Changed("repository") {
				patch.Repository = &fields.Repository
			}
			if fs.Changed("documentation") {
				patch.Documentation = &fields.Documentation
			}

			if !collection.Update(args[0], patch) {
				return fmt.Errorf("no custom server with id '%s'", args[0])
			}

			_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Updated '%s'\n", args[0])
			return err
		},
	}

	fields.register(cobraCommand.Flags())

	return cobraCommand, nil
}
