package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/cashbook/date"
)

// runDialog runs a dialog session on a scripted input and returns it with its output.
func runDialog(t *testing.T, input string) (*Dialog, string) {
	t.Helper()
	t.Setenv(date.EnvTestingNow, "2025-01-15")
	var out bytes.Buffer
	d := NewDialog(strings.NewReader(input), &out)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	return d, out.String()
}

func TestDialog_Scenario(t *testing.T) {
	input := strings.Join([]string{
		"1", "1000", "salary",
		"add expense", "250.50", "groceries",
		"Show All",
		"4",
		"5",
	}, "\n") + "\n"
	d, out := runDialog(t, input)

	if got := d.Ledger.Len(); got != 2 {
		t.Fatalf("Ledger.Len() = %d, want 2", got)
	}
	for _, want := range []string{
		"Choose an action",
		"[1] Add Income",
		"[5] Exit",
		"Amount (+):",
		"Note:",
		"Income: +1000.00 [salary]\n",
		"Expense: -250.50 [groceries]\n",
		"-- All Transactions --\n",
		"2025-01-15  INCOME       1000.00  salary\n",
		"2025-01-15  EXPENSE      -250.50  groceries\n",
		"Income = 1000.00\n",
		"Expense = 250.50\n",
		"Balance = 749.50\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestDialog_InvalidAmount(t *testing.T) {
	d, out := runDialog(t, "1\n-5\nx\n2\nabc\n\nexit\n")
	if got := d.Ledger.Len(); got != 0 {
		t.Errorf("Ledger.Len() = %d, want 0", got)
	}
	if got := strings.Count(out, InvalidAmountMessage); got != 2 {
		t.Errorf("output has %d invalid amount messages, want 2:\n%s", got, out)
	}
}

func TestDialog_Cancel(t *testing.T) {
	d, out := runDialog(t, "1\n\n3\n5\n")
	if got := d.Ledger.Len(); got != 0 {
		t.Errorf("Ledger.Len() = %d, want 0", got)
	}
	if !strings.Contains(out, "(No transactions yet)\n") {
		t.Errorf("output does not contain the empty listing:\n%s", out)
	}
}

func TestDialog_UnknownAction(t *testing.T) {
	_, out := runDialog(t, "9\nexit\n")
	if !strings.Contains(out, `Unknown action "9"`) {
		t.Errorf("output does not reject an unknown action:\n%s", out)
	}
}

func TestDialog_EndOfInputOnNote(t *testing.T) {
	d, out := runDialog(t, "1\n12")
	if got := d.Ledger.Len(); got != 1 {
		t.Fatalf("Ledger.Len() = %d, want 1", got)
	}
	if !strings.Contains(out, "Income: +12.00 []\n") {
		t.Errorf("output does not echo the transaction:\n%s", out)
	}
}

func TestDialog_CancelledWhileReading(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	d := NewDialog(&cancelReader{cancel: cancel, data: "1\n12\nlunch\n"}, &out)

	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
	if strings.Contains(out.String(), "Amount (+):") {
		t.Errorf("Run() kept asking after cancellation:\n%s", out.String())
	}
	if got := d.Ledger.Len(); got != 0 {
		t.Errorf("Ledger.Len() = %d, want 0", got)
	}
}
