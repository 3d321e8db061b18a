package cashbook

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ValidateCurrency checks that code is a known ISO 4217 currency code.
//
// An empty code is valid and means amounts are displayed without currency.
func ValidateCurrency(code string) error {
	if code == "" {
		return nil
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// FormatAmount formats value for display.
//
// Without currency, the value is printed with two decimals ("1234.50").
// With a currency, go-money's formatting rules for that currency apply
// (symbol, grouping and fraction digits, "$1,234.50").
func FormatAmount(value decimal.Decimal, currency string) string {
	if currency == "" {
		return value.StringFixed(2)
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return value.StringFixed(2) + " " + currency
	}
	minor := value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatSignedAmount is like FormatAmount but always prints the sign, except for zero.
func FormatSignedAmount(value decimal.Decimal, currency string) string {
	s := FormatAmount(value, currency)
	if value.IsPositive() {
		return "+" + s
	}
	return s
}
