package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook/console"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "record income and expenses from a numbered menu" }
func (*menuCmd) Usage() string {
	return `cbk menu

  Starts an interactive session with a numbered menu to add income and
  expenses, list them, and show the summary.

  Transactions live in memory, they are lost when the session ends.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: menu takes no arguments")
		return subcommands.ExitUsageError
	}

	m := console.NewMenu(os.Stdin, os.Stdout)
	m.Logger = sessionLogger()
	if err := m.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\ninterrupted")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
