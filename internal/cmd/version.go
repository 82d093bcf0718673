package cmd

import (
	"log"

	"github.com/black-library/store-tools/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version subcommand.
// It prints the full build report, including commit and build date.
func NewVersionCmd(appName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := version.PrintVersion(cmd.OutOrStdout(), appName); err != nil {
				log.Fatalf("Failed to print version: %v", err)
			}
		},
	}
}
