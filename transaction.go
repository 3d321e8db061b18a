package cashbook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single Income or Expense entry.
//
// A Transaction is immutable, use New, NewIncome or NewExpense to create one.
type Transaction struct {
	kind   Kind
	date   date.Date
	amount decimal.Decimal
	note   string
}

// New creates a transaction of the given kind.
//
// A zero date is replaced by today. The note is trimmed of surrounding
// whitespace. It fails with ErrInvalidAmount if amount is negative or out of
// the range accepted by ParseAmount.
func New[T Number](kind Kind, on date.Date, amount T, note string) (Transaction, error) {
	if !kind.Valid() {
		return Transaction{}, fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
	}
	value := newDecimal(amount)
	if value.IsNegative() {
		return Transaction{}, fmt.Errorf("%s amount must be >= 0, got %s: %w", kind, value, ErrInvalidAmount)
	}
	if err := checkRange(value); err != nil {
		return Transaction{}, fmt.Errorf("%s %w: %w", kind, err, ErrInvalidAmount)
	}
	return Transaction{
		kind:   kind,
		date:   on.Or(date.Today()),
		amount: value,
		note:   strings.TrimSpace(note),
	}, nil
}

// NewIncome creates an Income transaction.
func NewIncome[T Number](on date.Date, amount T, note string) (Transaction, error) {
	return New(Income, on, amount, note)
}

// NewExpense creates an Expense transaction.
func NewExpense[T Number](on date.Date, amount T, note string) (Transaction, error) {
	return New(Expense, on, amount, note)
}

// Kind returns the transaction variant.
func (t Transaction) Kind() Kind { return t.kind }

// When returns the date of the transaction.
func (t Transaction) When() date.Date { return t.date }

// Amount returns the non-negative amount of the transaction.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Note returns the trimmed note, possibly empty.
func (t Transaction) Note() string { return t.note }

// SignedAmount returns the amount, negated for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.amount.Mul(decimal.NewFromInt(kinds[t.kind].sign))
}

// TypeLabel returns "INCOME" or "EXPENSE".
func (t Transaction) TypeLabel() string { return t.kind.Label() }

// Equal reports whether t and o hold the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.kind == o.kind && t.date == o.date && t.amount.Equal(o.amount) && t.note == o.note
}

// String returns a compact single line description.
func (t Transaction) String() string {
	s := fmt.Sprintf("%s %s %s", t.date, t.kind, t.amount.StringFixed(2))
	if t.note != "" {
		s += " " + t.note
	}
	return s
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.kind)
	w.Append("date", t.date)
	w.Append("amount", t.amount)
	w.Optional("note", t.note)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// The decoded values go through the same validation as New.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Command Kind            `json:"command"`
		Date    date.Date       `json:"date"`
		Amount  decimal.Decimal `json:"amount"`
		Note    string          `json:"note"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	tx, err := New(temp.Command, temp.Date, temp.Amount, temp.Note)
	if err != nil {
		return err
	}
	*t = tx
	return nil
}
