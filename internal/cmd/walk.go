package cmd

import (
	"log"

	"github.com/black-library/store-tools/store"
	"github.com/spf13/cobra"
)

// NewWalkCmd creates and returns the process-all-files subcommand.
// It lists every item directory of the store and counts the files inside each.
func NewWalkCmd() *cobra.Command {
	var opts store.Options

	cmd := &cobra.Command{
		Use:     "process-all-files",
		Aliases: []string{"walk"},
		Short:   "Touch every item directory in the store",
		Long: `Walk the black-library store and report the files under each item.

The input fields file is a JSON object naming the store:

  {
      "store_directory": "/mnt/black-library/store"
  }

Every immediate subdirectory of the store is an item identifier. Only files
directly inside an item directory are counted.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := store.Run(cmd.OutOrStdout(), opts); err != nil {
				log.Fatalf("Failed to walk store: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.InputFields, "input_fields", "i", "", "JSON file with inputs (required)")
	cmd.MarkFlagRequired("input_fields")

	return cmd
}
