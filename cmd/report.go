package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	file   string
	path   string
	title  string
	plain  bool
	asJSON bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "list transactions and their summary" }
func (*reportCmd) Usage() string {
	return `cbk report [-f <file>] [-select <jsonpath>] [-plain|-json] [-title <title>]

  Reads transactions and prints them with their summary.

  Transactions are JSON lines, like:

    {"command":"income","date":"2025-01-15","amount":1000,"note":"salary"}
    {"command":"expense","date":"2025-01-16","amount":250.50,"note":"groceries"}

  With -select, the input is a single JSON document and the transactions
  are the objects selected by the JSONPath expression (e.g. "$.entries[*]").
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "File to read transactions from, '-' for stdin.")
	f.StringVar(&c.path, "select", "", "JSONPath expression selecting the transactions in a JSON document.")
	f.StringVar(&c.title, "title", "Cashbook", "Title of the markdown report.")
	f.BoolVar(&c.plain, "plain", false, "Print a plain text listing instead of markdown.")
	f.BoolVar(&c.asJSON, "json", false, "Print the transactions back as canonical JSON lines.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: report takes no arguments, use -f to read a file")
		return subcommands.ExitUsageError
	}
	if c.plain && c.asJSON {
		fmt.Fprintln(os.Stderr, "Error: -plain and -json are mutually exclusive")
		return subcommands.ExitUsageError
	}

	ledger, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.asJSON:
		if err := cashbook.EncodeLedger(os.Stdout, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.plain:
		renderer.Transactions(os.Stdout, ledger.Items())
		fmt.Println()
		renderer.Summary(os.Stdout, ledger.Summary())
	default:
		printMarkdown(renderer.ReportMarkdown(c.title, ledger, *currency))
	}
	return subcommands.ExitSuccess
}

// load reads the ledger from the selected input.
func (c *reportCmd) load() (*cashbook.Ledger, error) {
	var r io.Reader = os.Stdin
	if c.file != "-" && c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			return nil, fmt.Errorf("cannot open transactions: %w", err)
		}
		defer file.Close()
		r = file
	}

	if c.path == "" {
		return cashbook.DecodeTransactions(r)
	}
	doc, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read document: %w", err)
	}
	return cashbook.SelectTransactions(doc, c.path)
}
