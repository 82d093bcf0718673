package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/black-library/store-tools/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// Every item whose colorhash lands in this bucket gets one section file
// repeated, so a fresh seed always has something for find-repeated-md5 to find.
const duplicateEvery = 3

// NewSeedCmd creates and returns the seed subcommand.
// It generates a synthetic store with uuid-named item directories.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		exportPath string
		itemCount  int
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a test store with randomized items",
		Long: `Generate a store directory for trying out the other commands.

Creates one directory per item, named by a random UUID, each holding a number
of section files with random content. Roughly one item in three gets a
section whose content repeats an earlier section of the same item. Pass
--export to also write the matching export file.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, exportPath, itemCount, fileCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output store directory (required)")
	cmd.Flags().StringVar(&exportPath, "export", "", "Also write an export file for the new store")
	cmd.Flags().IntVarP(&itemCount, "items", "n", 50, "Number of items to generate")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 10, "Number of section files per item")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath, exportPath string, itemCount, fileCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d items with %d files each in %s\n", itemCount, fileCount, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	duplicated, err := seedStore(outputPath, itemCount, fileCount)
	if err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	if exportPath != "" {
		if err := writeExportFile(exportPath, store.Config{StoreDirectory: outputPath}, time.Now()); err != nil {
			log.Fatalf("Failed to export store: %v", err)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d items\n", itemCount)
		fmt.Printf("Items with a repeated section: %d\n", duplicated)
	}
}

// seedStore fills root with itemCount item directories and returns how many
// of them received a duplicated section.
func seedStore(root string, itemCount, fileCount int) (duplicated int, err error) {
	for range itemCount {
		id := uuid.New().String()
		dir := filepath.Join(root, id)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return duplicated, err
		}

		var first []byte
		dup := fileCount > 1 && colorhash.HashString(id)%duplicateEvery == 0
		for i := range fileCount {
			content := make([]byte, 64)
			if _, err := rand.Read(content); err != nil {
				return duplicated, err
			}
			if i == 0 {
				first = content
			}
			if dup && i == fileCount-1 {
				content = first
			}
			name := filepath.Join(dir, fmt.Sprintf("section-%03d.html", i))
			if err := os.WriteFile(name, content, 0644); err != nil {
				return duplicated, err
			}
		}
		if dup {
			duplicated++
		}
	}
	return duplicated, nil
}
