// Package renderer formats ledger contents for the console front ends and as markdown.
package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/cashbook"
)

// EmptyMessage is printed instead of a listing when there are no transactions.
const EmptyMessage = "(No transactions yet)"

// Transactions writes the console listing of txs: a header line then one line
// per transaction with its date, type label, signed amount and note.
func Transactions(w io.Writer, txs []cashbook.Transaction) {
	section := Header(func(w io.Writer) {
		printLine(w, "%-12s %-8s %12s  %s", "Date", "Type", "Amount", "Note")
	})
	for _, tx := range txs {
		section.PrintHeader(w)
		printLine(w, "%-12s %-8s %12s  %s", tx.When(), tx.TypeLabel(), tx.SignedAmount().StringFixed(2), tx.Note())
	}
	if !section.Printed() {
		fmt.Fprintln(w, EmptyMessage)
	}
}

// Summary writes the three summary lines: total income, total expense and balance.
func Summary(w io.Writer, s cashbook.Summary) {
	fmt.Fprintf(w, "Total Income : %s\n", s.Income.StringFixed(2))
	fmt.Fprintf(w, "Total Expense: %s\n", s.Expense.StringFixed(2))
	fmt.Fprintf(w, "Balance      : %s\n", s.Balance.StringFixed(2))
}

// DialogTransactions writes the listing in the dialog front end layout.
func DialogTransactions(w io.Writer, txs []cashbook.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return
	}
	fmt.Fprintln(w, "-- All Transactions --")
	for _, tx := range txs {
		printLine(w, "%s  %-7s %12s  %s", tx.When(), tx.TypeLabel(), tx.SignedAmount().StringFixed(2), tx.Note())
	}
}

// DialogSummary writes the summary in the dialog front end layout.
func DialogSummary(w io.Writer, s cashbook.Summary) {
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "Income = %s\n", s.Income.StringFixed(2))
	fmt.Fprintf(w, "Expense = %s\n", s.Expense.StringFixed(2))
	fmt.Fprintf(w, "Balance = %s\n", s.Balance.StringFixed(2))
}

// Added returns the line echoed by the dialog front end after a transaction
// has been recorded, e.g. "Income: +12.00 [lunch]".
func Added(tx cashbook.Transaction) string {
	sign := "+"
	if tx.Kind() == cashbook.Expense {
		sign = "-"
	}
	return fmt.Sprintf("%s: %s%s [%s]", tx.Kind().Title(), sign, tx.Amount().StringFixed(2), tx.Note())
}
