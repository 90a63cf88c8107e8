package main

import (
	"os"

	"github.com/xelthorlang/xelthor/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
