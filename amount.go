package cashbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Number lists the types accepted as an amount.
type Number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T Number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amounts are bounded, so that every aggregate stays a small number.
const (
	maxAmountDigits   = 20  // significant digits
	maxAmountExponent = 12  // 1e12
	minAmountExponent = -20 // 1e-20
)

// checkRange fails if v has too many digits or an extreme exponent.
func checkRange(v decimal.Decimal) error {
	if exp := v.Exponent(); exp > maxAmountExponent || exp < minAmountExponent {
		return fmt.Errorf("amount exponent %d is out of range", exp)
	}
	if v.NumDigits() > maxAmountDigits {
		return fmt.Errorf("amount has more than %d digits", maxAmountDigits)
	}
	return nil
}

// ParseAmount parses an amount typed by a user.
//
// Surrounding whitespace is ignored. It returns ErrInvalidInput if text is not
// a number, or a number too large or too precise to be an amount, and
// ErrInvalidAmount if the number is negative.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number: %w", s, ErrInvalidInput)
	}
	if err := checkRange(v); err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w: %w", s, err, ErrInvalidInput)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must be >= 0, got %s: %w", s, ErrInvalidAmount)
	}
	return v, nil
}
