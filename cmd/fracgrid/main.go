package main

import (
	"os"

	"github.com/danieljhkim/fracgrid/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
