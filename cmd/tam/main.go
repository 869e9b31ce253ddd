// Command tam is the command-line interface to the Triangle Abstract
// Machine emulator.
package main

import (
	"context"
	"os"

	"github.com/trianglelang/tam/internal/cli"
	"github.com/trianglelang/tam/internal/cli/cmd"
)

var commands = []cli.Command{
	cmd.Run(),
}

func main() {
	result :=
		cli.New(context.Background()).
			WithLogger(os.Stderr).
			WithCommands(commands).
			WithHelp(cmd.Help(commands)).
			Execute(os.Args[1:])

	os.Exit(result)
}
