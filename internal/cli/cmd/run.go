// Package cmd implements the host's one collaborator command: loading a
// program image and running it to completion, optionally tracing or
// single-stepping.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/trianglelang/tam/internal/binimage"
	"github.com/trianglelang/tam/internal/cli"
	"github.com/trianglelang/tam/internal/console"
	"github.com/trianglelang/tam/internal/log"
	"github.com/trianglelang/tam/internal/tam"
)

type runner struct {
	trace bool
	step  bool
}

// Run returns the CLI's collaborator command: `tam FILENAME [-t|--trace]
// [-s|--step]`.
func Run() cli.Command {
	return &runner{}
}

func (runner) Description() string {
	return "run a TAM program"
}

func (r *runner) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `tam FILENAME [-t|--trace] [-s|--step]

Loads and runs a Triangle Abstract Machine program image. -s requires -t
and waits for a keypress on the controlling terminal between cycles.`)

	return err
}

func (r *runner) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.BoolVar(&r.trace, "t", false, "print a snapshot after every cycle")
	fs.BoolVar(&r.trace, "trace", false, "print a snapshot after every cycle")
	fs.BoolVar(&r.step, "s", false, "wait for a keypress between cycles (requires -t)")
	fs.BoolVar(&r.step, "step", false, "wait for a keypress between cycles (requires -t)")

	return fs
}

// Run loads and runs the program named by the sole element of args.
func (r *runner) Run(_ context.Context, args []string, out io.Writer, logger *log.Logger) int {
	if r.step && !r.trace {
		fmt.Fprintln(os.Stderr, "tam: -s requires -t")
		_ = r.Usage(os.Stderr)

		return 1
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "tam: expected exactly one FILENAME argument")
		_ = r.Usage(os.Stderr)

		return 1
	}

	file, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tam: %s\n", err)
		return 1
	}
	defer file.Close()

	words, err := binimage.ReadProgram(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tam: %s\n", err)
		return 2
	}

	emu := tam.New(tam.WithLogger(logger), tam.WithStreams(os.Stdin, out))

	if loadErr := emu.LoadProgram(words); loadErr != nil {
		fmt.Fprintf(os.Stderr, "tam: %s\n", loadErr)
		return 2
	}

	var cons *console.Console

	if r.step {
		cons, err = console.New(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tam: %s\n", err)
			return 1
		}

		defer cons.Restore()
	}

	return r.loop(emu, out, cons)
}

func (r *runner) loop(emu *tam.Emulator, out io.Writer, cons *console.Console) int {
	for {
		ins, halted, err := emu.Step()
		if err != nil {
			fmt.Fprintf(os.Stderr, "tam: %s\n", err)
			return 3
		}

		if r.trace {
			fmt.Fprint(out, emu.GetSnapshot(ins))
		}

		if halted {
			return 0
		}

		if cons != nil {
			if _, err := cons.WaitKey(); err != nil {
				fmt.Fprintf(os.Stderr, "tam: %s\n", err)
				return 3
			}
		}
	}
}
