package decimal

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount reported in cents.
// It marshals as a quoted fixed two-decimal string so trailing zeros survive a round trip.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from an integer amount
func NewMoney(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundCents rounds d to two decimal places, ties away from zero.
// For the non-negative amounts this calculator reports that is round-half-up.
func RoundCents(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

// String returns the amount with exactly two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// FormatGrouped renders d with two decimals, grouping thousands with sep and
// separating cents with point. The sign precedes the symbol.
func FormatGrouped(symbol string, d decimal.Decimal, sep, point string) string {
	fixed := d.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	if symbol != "" {
		b.WriteString(symbol)
		b.WriteByte(' ')
	}
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(whole[i : i+3])
	}
	b.WriteString(point)
	b.WriteString(cents)
	return b.String()
}

// MarshalJSON encodes the amount as a quoted two-decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts quoted or bare decimal literals without going through float64.
func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	d, err := decimal.NewFromString(string(bytes.Trim(data, `"`)))
	if err != nil {
		return fmt.Errorf("decoding money %s: %w", data, err)
	}
	m.Decimal = d
	return nil
}

// MarshalText encodes the amount as a two-decimal string (used by YAML and TOML encoders).
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a decimal literal.
func (m *Money) UnmarshalText(text []byte) error {
	d, err := decimal.NewFromString(string(text))
	if err != nil {
		return fmt.Errorf("decoding money %q: %w", text, err)
	}
	m.Decimal = d
	return nil
}
