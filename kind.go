package cashbook

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the variant of a Transaction.
type Kind int

const (
	// Income is money coming in, it increases the balance.
	Income Kind = iota + 1
	// Expense is money going out, it decreases the balance.
	Expense
)

// kindInfo holds everything that varies between transaction kinds.
type kindInfo struct {
	sign  int64  // multiplier applied to the amount
	label string // display label
	title string // title case name, used in prompts
	name  string // command name used in JSON and on the command line
}

var kinds = map[Kind]kindInfo{
	Income:  {sign: 1, label: "INCOME", title: "Income", name: "income"},
	Expense: {sign: -1, label: "EXPENSE", title: "Expense", name: "expense"},
}

// Kinds returns all valid kinds, in display order.
func Kinds() []Kind { return []Kind{Income, Expense} }

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Label returns the upper case display label, "INCOME" or "EXPENSE".
func (k Kind) Label() string { return kinds[k].label }

// Title returns the kind name as shown in prompts, "Income" or "Expense".
func (k Kind) Title() string { return kinds[k].title }

// String returns the command name of the kind, "income" or "expense".
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind parses a command name into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, info := range kinds {
		if info.name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// MarshalJSON encodes a kind as its command name. Unknown kinds are an error.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a command name, see ParseKind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
