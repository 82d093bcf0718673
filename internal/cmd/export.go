package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/black-library/store-tools/store"
	"github.com/spf13/cobra"
)

// NewExportCmd creates and returns the export subcommand.
// It hashes every content file in the store and writes an export file.
func NewExportCmd() *cobra.Command {
	var (
		inputFields string
		outputPath  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an md5 export file from the store",
		Long: `Hash every content file in the store and write one export row per file.

Rows follow the md5_sum column order
(uuid,index_num,md5_sum,date,sec_id,seq_num,version_num), so the output can be
fed straight to find-repeated-md5.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runExport(cmd.OutOrStdout(), inputFields, outputPath)
		},
	}

	cmd.Flags().StringVarP(&inputFields, "input_fields", "i", "", "JSON file with inputs (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the export here instead of stdout")
	cmd.MarkFlagRequired("input_fields")

	return cmd
}

func runExport(stdout io.Writer, inputFields, outputPath string) {
	cfg, err := store.LoadConfig(inputFields)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if outputPath == "" {
		if err := store.Export(stdout, cfg, time.Now()); err != nil {
			log.Fatalf("Failed to export store: %v", err)
		}
		return
	}

	if err := writeExportFile(outputPath, cfg, time.Now()); err != nil {
		log.Fatalf("Failed to export store: %v", err)
	}
	fmt.Fprintf(stdout, "Export written to %s\n", outputPath)
}

// writeExportFile writes the store export to path. On any failure the
// partial file is removed so a truncated export is never left behind.
func writeExportFile(path string, cfg store.Config, now time.Time) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := store.Export(f, cfg, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
