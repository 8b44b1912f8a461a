// Package money provides exact decimal value types for monetary amounts
// and allocation percentages. All arithmetic is performed on decimals,
// never on binary floats, and all rounding is explicit.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal digits every Money value carries.
const Scale = 2

// ErrFormat is returned when a Money or Percentage literal cannot be
// parsed. Use errors.Is to check for it.
var ErrFormat = errors.New("malformed value")

// Money is an immutable monetary amount with a fixed scale of two
// decimal digits. The currency is implicit; all amounts in one system
// are assumed to share it. Arithmetic returns new values and rounds
// half-up to the scale.
type Money struct {
	amount decimal.Decimal
}

// New creates a Money from a decimal, rounding half-up to two decimal
// digits.
func New(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(Scale)}
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Parse reads a Money from a decimal literal such as "100.00". Negative
// and non-numeric input fails with ErrFormat.
func Parse(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal amount", ErrFormat, s)
	}

	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount %q must not be negative", ErrFormat, s)
	}

	return New(amount), nil
}

// MustParse is Parse for statically known literals. It panics on error.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of both amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Multiply applies a percentage to the amount, rounding the result
// half-up to the money scale.
func (m Money) Multiply(p Percentage) Money {
	return New(m.amount.Mul(p.value))
}

// Cmp compares two amounts. It returns -1, 0 or 1 when m is smaller
// than, equal to or greater than other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal reports whether both amounts have the same exact decimal value.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Decimal returns the amount as a decimal.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats the amount with exactly two decimal digits, the same
// representation Parse accepts.
func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}

// MarshalJSON encodes the amount as a JSON string to preserve exactness.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes a Money from its JSON string form.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
