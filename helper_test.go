package cashbook

import (
	"testing"

	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to create a decimal from a literal.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// income is a helper for tests to create a valid Income transaction.
func income(t *testing.T, on string, amount string, note string) Transaction {
	t.Helper()
	tx, err := NewIncome(date.MustParse(on), dec(amount), note)
	if err != nil {
		t.Fatalf("NewIncome(%s, %s, %q) unexpected error: %v", on, amount, note, err)
	}
	return tx
}

// expense is a helper for tests to create a valid Expense transaction.
func expense(t *testing.T, on string, amount string, note string) Transaction {
	t.Helper()
	tx, err := NewExpense(date.MustParse(on), dec(amount), note)
	if err != nil {
		t.Fatalf("NewExpense(%s, %s, %q) unexpected error: %v", on, amount, note, err)
	}
	return tx
}
