package cmd

import (
	"log"

	"github.com/black-library/store-tools/export"
	"github.com/spf13/cobra"
)

// NewDupesCmd creates and returns the find-repeated-md5 subcommand.
// It reports content hashes that repeat within the same item of an export file.
func NewDupesCmd() *cobra.Command {
	var opts export.Options

	cmd := &cobra.Command{
		Use:     "find-repeated-md5",
		Aliases: []string{"dupes"},
		Short:   "Check an export file for duplicate md5s",
		Long: `Check a black-library export file for content hashes that repeat within
the same item.

Each line of the export file is comma separated; field 0 is the item
identifier and field 2 is the md5 of one content file. For every item the
number of recorded hashes is printed as "md5: <identifier> len: <count>",
followed by the set of hashes seen more than once for a single item.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := export.Run(cmd.OutOrStdout(), opts); err != nil {
				log.Fatalf("Failed to check export file: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the export file (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}
