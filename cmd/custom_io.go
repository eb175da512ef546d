package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcp-hub/mcphub/internal/perms"
)

func newCustomExportCmd(c *CustomCmd) (*cobra.Command, error) {
	var outputPath string

	cobraCommand := &cobra.Command{
		Use:   "export",
		Short: "Exports your custom servers as a JSON document.",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			collection, err := c.open()
			if err != nil {
				return err
			}

			data, err := collection.Export()
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "%s\n", data)
				return err
			}

			if err := os.WriteFile(outputPath, data, perms.RegularFile); err != nil {
				return fmt.Errorf("failed to write export to %s: %w", outputPath, err)
			}

			_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Exported %d server(s) to %s\n", collection.Count(), outputPath)
			return err
		},
	}

	cobraCommand.Flags().StringVar(&outputPath, "output", "", "write to a file instead of stdout")

	return cobraCommand, nil
}

func newCustomImportCmd(c *CustomCmd) (*cobra.Command, error) {
	var replace bool

	cobraCommand := &cobra.Command{
		Use:   "import <file>",
		Short: "Imports custom servers from a JSON document.",
		Long: `Imports custom servers from a JSON array of server records ('-' reads
stdin). Every record must carry at least a name, type and category; when any
record is invalid, nothing is imported. Imported records receive fresh ids
and slugs so they never collide with existing entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			var data []byte
			var err error

			if args[0] == "-" {
				data, err = io.ReadAll(cobraCmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read import document: %w", err)
			}

			collection, err := c.open()
			if err != nil {
				return err
			}

			count, err := collection.Import(data, replace)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cobraCmd.OutOrStdout(), "Imported %d server(s) (%d total)\n", count, collection.Count())
			return err
		},
	}

	cobraCommand.Flags().BoolVar(&replace, "replace", false, "replace the collection instead of appending")

	return cobraCommand, nil
}
