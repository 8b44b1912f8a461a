package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Percentage is an immutable allocation weight in [0, 1]. It parses
// from both the percent form "50%" and the fraction form "0.5" and
// keeps the exact decimal value.
type Percentage struct {
	value decimal.Decimal
}

var one = decimal.NewFromInt(1)

// ParsePercentage reads a Percentage from a literal. "8%" and "0.08"
// denote the same value. Values outside [0, 1] and non-numeric input
// fail with ErrFormat.
func ParsePercentage(s string) (Percentage, error) {
	literal := s
	percentForm := strings.HasSuffix(literal, "%")
	if percentForm {
		literal = strings.TrimSuffix(literal, "%")
	}

	value, err := decimal.NewFromString(literal)
	if err != nil {
		return Percentage{}, fmt.Errorf("%w: %q is not a percentage", ErrFormat, s)
	}

	if percentForm {
		value = value.Shift(-2)
	}

	if value.IsNegative() || value.GreaterThan(one) {
		return Percentage{}, fmt.Errorf("%w: percentage %q must be between 0%% and 100%%", ErrFormat, s)
	}

	return Percentage{value: value}, nil
}

// MustParsePercentage is ParsePercentage for statically known literals.
// It panics on error.
func MustParsePercentage(s string) Percentage {
	p, err := ParsePercentage(s)
	if err != nil {
		panic(err)
	}

	return p
}

// NewPercentageFromDecimal creates a Percentage from a fraction value,
// e.g. 0.5 for 50%. It fails with ErrFormat outside [0, 1].
func NewPercentageFromDecimal(value decimal.Decimal) (Percentage, error) {
	if value.IsNegative() || value.GreaterThan(one) {
		return Percentage{}, fmt.Errorf("%w: percentage %s must be between 0%% and 100%%", ErrFormat, value)
	}

	return Percentage{value: value}, nil
}

// Of applies the percentage to an amount. It is equivalent to
// amount.Multiply(p).
func (p Percentage) Of(amount Money) Money {
	return amount.Multiply(p)
}

// Equal reports whether both percentages have the same exact value.
func (p Percentage) Equal(other Percentage) bool {
	return p.value.Equal(other.value)
}

// IsZero reports whether the percentage is exactly zero.
func (p Percentage) IsZero() bool {
	return p.value.IsZero()
}

// Decimal returns the percentage as a fraction, e.g. 0.5 for 50%.
func (p Percentage) Decimal() decimal.Decimal {
	return p.value
}

// String formats the percentage in percent form, e.g. "50%". The output
// round-trips through ParsePercentage.
func (p Percentage) String() string {
	return p.value.Shift(2).String() + "%"
}

// MarshalJSON encodes the percentage as a JSON string in percent form.
func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON decodes a Percentage from its JSON string form. Both
// literal forms are accepted.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := ParsePercentage(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
