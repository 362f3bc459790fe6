package main

import (
	"os"

	"github.com/jhoicas/concar-rcp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
