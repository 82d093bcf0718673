package main

import (
	"context"
	"os"

	"github.com/black-library/store-tools/internal/cmd"
	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.NewCountCmd()); err != nil {
		os.Exit(1)
	}
}
