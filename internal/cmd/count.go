package cmd

import (
	"fmt"
	"log"

	"github.com/black-library/store-tools/util"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand.
// It provides file counting functionality for directory trees.
func NewCountCmd() *cobra.Command {
	var (
		path         string
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count files in a directory tree",
		Long: `Count the total number of files in a directory tree.

Unlike process-all-files this walks the whole tree, including nested
directories inside items. Useful for getting quick statistics about a store.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				path = args[0]
			}
			runCount(cmd, path, showProgress)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show progress every 10,000 files")

	return cmd
}

func runCount(cmd *cobra.Command, path string, showProgress bool) {
	out := cmd.OutOrStdout()
	var progress func(int)
	if showProgress {
		progress = func(count int) {
			if count%10000 == 0 {
				fmt.Fprintf(out, "Progress: %d files counted\n", count)
			}
		}
	}

	count, err := util.CountFiles(path, progress)
	if err != nil {
		log.Fatalf("Error counting files: %v", err)
	}

	fmt.Fprintf(out, "Total files: %d\n", count)
}
