// Command find-repeated-md5 checks an export file for duplicate md5s.
//
//	find-repeated-md5 --file export.csv
package main

import (
	"context"
	"os"

	"github.com/black-library/store-tools/internal/cmd"
	"github.com/black-library/store-tools/version"
	"github.com/charmbracelet/fang"
)

func main() {
	c := cmd.NewDupesCmd()
	c.Version = version.GetFullVersion()
	if err := fang.Execute(context.Background(), c); err != nil {
		os.Exit(1)
	}
}
