package main

import (
	"os"

	"github.com/nvasanth/candex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
