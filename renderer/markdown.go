package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cashbook"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders txs as a markdown table.
//
// currency is only used to format amounts, it can be empty.
func TransactionsMarkdown(txs []cashbook.Transaction, currency string) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Transactions\n\n")

	section := Header(func(w io.Writer) {
		fmt.Fprintln(w, "| Date | Type | Amount | Note |")
		fmt.Fprintln(w, "|:---|:---|---:|:---|")
	})
	for _, tx := range txs {
		section.PrintHeader(&b)
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			tx.When(),
			tx.TypeLabel(),
			cashbook.FormatSignedAmount(tx.SignedAmount(), currency),
			escapeCell(tx.Note()),
		)
	}
	if !section.Printed() {
		fmt.Fprintln(&b, EmptyMessage)
	}
	fmt.Fprintln(&b)
	return b.String()
}

// SummaryMarkdown renders the summary as a markdown section.
func SummaryMarkdown(s cashbook.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Summary")
	doc.PlainText(fmt.Sprintf("%d transaction(s)", s.Count))
	doc.Table(md.TableSet{
		Header: []string{"Total", "Amount"},
		Rows: [][]string{
			{"Total Income", cashbook.FormatAmount(s.Income, currency)},
			{"Total Expense", cashbook.FormatAmount(s.Expense, currency)},
			{"Balance", cashbook.FormatSignedAmount(s.Balance, currency)},
		},
	})

	return doc.String()
}

// ReportMarkdown renders a full report: a title, the transactions and the summary.
func ReportMarkdown(title string, ledger *cashbook.Ledger, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString(TransactionsMarkdown(ledger.Items(), currency))
	b.WriteString(SummaryMarkdown(ledger.Summary(), currency))
	return b.String()
}

// escapeCell makes s safe to use in a markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
