package main

import (
	"os"

	"github.com/grovetools/capsgat/cmd"
	"github.com/grovetools/core/cli"
)

func main() {
	if err := cli.Execute(cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
