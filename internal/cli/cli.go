// Package cli contains the command-line interface.
package cli

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/trianglelang/tam/internal/log"
)

// Command represents a sub-command in the CLI. Each sub-command can have their own flags, config
// and action to perform.
type Command interface {
	// FlagSet returns a set of command options the command accepts.
	FlagSet() *flag.FlagSet

	// Description returns a brief description of the command's function.
	Description() string

	// Usage prints detailed command documentation.
	Usage(out io.Writer) error

	// Run executes the command with arguments. Command output should be written to |out|. It
	// returns an exit code.
	Run(ctx context.Context, args []string, out io.Writer, logger *log.Logger) int
}

// Commander is a CLI command-runner that handles the life cycle of a CLI command execution.
type Commander struct {
	ctx context.Context
	log *log.Logger

	help     Command
	commands []Command
}

// New creates a new |Commander| that can start sub-commands.
func New(ctx context.Context) *Commander {
	return &Commander{
		ctx: ctx,
	}
}

// Execute runs the CLI's one collaborator command against args. Unlike a
// multi-command CLI, there is no leading command word: the contract is
// `tam FILENAME [-t|--trace] [-s|--step] [-h|--help]`, so -h/--help is
// recognized anywhere in args and short forms may be combined as -ts or
// -st.
func (cli *Commander) Execute(args []string) int {
	args = expandCombinedFlags(args)

	for _, a := range args {
		if a == "-h" || a == "--help" {
			cli.help.Run(cli.ctx, nil, os.Stdout, cli.log)
			return 0
		}
	}

	if len(args) == 0 {
		cli.help.Run(cli.ctx, nil, os.Stdout, cli.log)
		return 1
	}

	if len(cli.commands) == 0 {
		cli.log.Error("no command configured")
		return 1
	}

	cmd := cli.commands[0]
	fs := cmd.FlagSet()

	// The flag package stops at the first non-flag argument, so parsing
	// resumes after each positional argument: flags may appear on either
	// side of FILENAME.
	var positional []string

	for {
		if err := fs.Parse(args); err != nil {
			return 1
		}

		args = fs.Args()
		if len(args) == 0 {
			break
		}

		positional = append(positional, args[0])
		args = args[1:]
	}

	return cmd.Run(cli.ctx, positional, os.Stdout, cli.log)
}

// expandCombinedFlags rewrites the short forms -ts and -st into their two
// constituent flags, so the flag package sees -t and -s separately.
func expandCombinedFlags(args []string) []string {
	out := make([]string, 0, len(args))

	for _, a := range args {
		switch a {
		case "-ts":
			out = append(out, "-t", "-s")
		case "-st":
			out = append(out, "-s", "-t")
		default:
			out = append(out, a)
		}
	}

	return out
}

// WithCommands adds a list of commands as sub-commands.
func (cli *Commander) WithCommands(cmds []Command) *Commander {
	cli.commands = append([]Command(nil), cmds...)
	return cli
}

// WithHelp configures the help message a command.
func (cli *Commander) WithHelp(cmd Command) *Commander {
	cli.help = cmd
	return cli
}

// WithLogger configures the logger for the CLI. Logs are written to os.Stderr to leave os.Stdout
// for program output.
func (cli *Commander) WithLogger(out *os.File) *Commander {
	logger := log.NewFormattedLogger(out)
	cli.log = logger

	log.SetDefault(logger)

	return cli
}

// Type aliases from std lib.
type (
	Flag    = flag.Flag
	FlagSet = flag.FlagSet
)
