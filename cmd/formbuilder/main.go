package main

import (
	"os"

	"github.com/formcraft/formbuilder-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
