// Command process-all-files touches every item directory in the store.
//
//	process-all-files --input_fields input_fields.json
//
// with input_fields.json holding
//
//	{
//	    "store_directory": "/mnt/black-library/store"
//	}
package main

import (
	"context"
	"os"

	"github.com/black-library/store-tools/internal/cmd"
	"github.com/black-library/store-tools/version"
	"github.com/charmbracelet/fang"
)

func main() {
	c := cmd.NewWalkCmd()
	c.Version = version.GetFullVersion()
	if err := fang.Execute(context.Background(), c); err != nil {
		os.Exit(1)
	}
}
