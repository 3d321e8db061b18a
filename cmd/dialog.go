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

type dialogCmd struct{}

func (*dialogCmd) Name() string     { return "dialog" }
func (*dialogCmd) Synopsis() string { return "record income and expenses through dialog boxes" }
func (*dialogCmd) Usage() string {
	return `cbk dialog

  Starts an interactive session made of boxed dialogs. Actions are chosen
  by number or by name (e.g. "add income", "show summary").

  An empty amount cancels the current addition.
`
}

func (c *dialogCmd) SetFlags(f *flag.FlagSet) {}

func (c *dialogCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: dialog takes no arguments")
		return subcommands.ExitUsageError
	}

	d := console.NewDialog(os.Stdin, os.Stdout)
	d.Logger = sessionLogger()
	if err := d.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\ninterrupted")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
