package cashbook

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Ledger represents a list of transactions.
//
// A Ledger is append-only: transactions are kept in the order they were added
// and are never modified or removed. The zero value is an empty ledger ready to
// use.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Add appends tx to the ledger.
func (l *Ledger) Add(tx Transaction) {
	l.transactions = append(l.transactions, tx)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Items returns a copy of all transactions in insertion order.
//
// It never returns nil, an empty ledger yields an empty slice.
func (l *Ledger) Items() []Transaction {
	items := make([]Transaction, len(l.transactions))
	copy(items, l.transactions)
	return items
}

// All iterates over transactions in insertion order.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// TotalIncome returns the sum of all Income amounts.
func (l *Ledger) TotalIncome() decimal.Decimal { return l.total(Income) }

// TotalExpense returns the sum of all Expense amounts.
//
// The result is a magnitude: it is positive even though expenses have a
// negative signed amount.
func (l *Ledger) TotalExpense() decimal.Decimal { return l.total(Expense) }

func (l *Ledger) total(kind Kind) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range l.transactions {
		if tx.kind == kind {
			sum = sum.Add(tx.amount)
		}
	}
	return sum
}

// Balance returns the sum of all signed amounts, that is TotalIncome() - TotalExpense().
func (l *Ledger) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range l.transactions {
		sum = sum.Add(tx.SignedAmount())
	}
	return sum
}

// Summary holds the aggregate figures of a ledger.
type Summary struct {
	Count   int             `json:"count"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// Summary computes all aggregates in a single pass.
func (l *Ledger) Summary() Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
	for _, tx := range l.transactions {
		switch tx.kind {
		case Income:
			s.Income = s.Income.Add(tx.amount)
		case Expense:
			s.Expense = s.Expense.Add(tx.amount)
		}
		s.Balance = s.Balance.Add(tx.SignedAmount())
		s.Count++
	}
	return s
}
