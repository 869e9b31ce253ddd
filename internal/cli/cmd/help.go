package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/trianglelang/tam/internal/cli"
	"github.com/trianglelang/tam/internal/log"
)

type help struct {
	cmd []cli.Command
}

var _ cli.Command = (*help)(nil)

func (help) Description() string {
	return "display usage"
}

func (h help) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("help", flag.ContinueOnError)
}

func (h help) Run(_ context.Context, _ []string, out io.Writer, _ *log.Logger) int {
	_ = h.Usage(out)
	return 0
}

func (h *help) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `tam is an emulator for the Triangle Abstract Machine.

Usage:

        tam FILENAME [-t|--trace] [-s|--step] [-h|--help]

Flags:

        -t, --trace   print a snapshot after every cycle
        -s, --step    wait for a keypress between cycles (requires -t)
        -h, --help    show this message`)

	return err
}

// Help returns the CLI's -h/--help handler.
func Help(cmd []cli.Command) *help {
	return &help{cmd: cmd}
}
