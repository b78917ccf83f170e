package main

import (
	"os"

	"github.com/katalvlaran/gramgen/cmd/gramgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
