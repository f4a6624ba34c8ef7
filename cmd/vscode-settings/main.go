package main

import (
	"os"

	"github.com/arvinn/vscode-settings/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
