package main

import (
	"os"

	"github.com/lexora/srs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
