package cashbook

import "errors"

var (
	// ErrInvalidAmount is returned when an amount is negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidInput is returned when a text cannot be parsed as an amount.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidKind is returned for a transaction kind other than Income or Expense.
	ErrInvalidKind = errors.New("invalid transaction kind")
)
