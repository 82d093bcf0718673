package cmd

import (
	"github.com/black-library/store-tools/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the bltools CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bltools",
		Short: "bltools - maintenance utilities for the black-library content store",
		Long: `bltools bundles the maintenance scripts for a black-library content store.

Use subcommands to perform different operations:
  - find-repeated-md5: Check an export file for duplicate md5s
  - process-all-files: Count the files under every item in the store
  - export: Write an md5 export file from the store
  - seed: Generate a test store
  - count: Count files in directory trees
  - version: Show version information`,
		Version: version.GetFullVersion(),
	}

	groupStore := "store"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupStore,
		Title: "Store Checks",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	dupesCmd := NewDupesCmd()
	walkCmd := NewWalkCmd()
	exportCmd := NewExportCmd()
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd("bltools")

	dupesCmd.GroupID = groupStore
	walkCmd.GroupID = groupStore
	exportCmd.GroupID = groupUtilities
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(dupesCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
