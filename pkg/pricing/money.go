// Package pricing computes line-item totals for configured catalogue
// products: a base price, an exclusive variation delta and a set of
// repeatable optionals combine into one unit price, multiplied by the
// line quantity.
//
// All arithmetic is fixed-point on integer cents. Decimal strings are
// parsed at the boundary and rendered only for output, so repeated
// additions never accumulate floating-point drift.
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in integer cents. Negative values are legal at this
// level (variation deltas may discount); sign rules are enforced by the
// entity validators, not by the type.
type Money int64

// ParseMoney parses a decimal amount such as "35", "35.5" or "-5.00".
// At most two fraction digits are accepted; anything else is rejected so
// malformed form input never silently loses precision.
func ParseMoney(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("pricing: empty amount")
	}

	neg := false
	switch raw[0] {
	case '-':
		neg = true
		raw = raw[1:]
	case '+':
		raw = raw[1:]
	}

	whole, frac, hasFrac := strings.Cut(raw, ".")
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("pricing: invalid amount %q", s)
	}

	cents := int64(0)
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("pricing: invalid amount %q (max 2 decimal places)", s)
		}
		padded := frac
		if len(padded) == 1 {
			padded += "0"
		}
		cents, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("pricing: invalid amount %q", s)
		}
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Money(total), nil
}

// FromFloat converts a float amount to Money, rounding half away from
// zero at the second decimal place. Use only at ingestion boundaries.
func FromFloat(f float64) Money {
	return Money(math.Round(f * 100))
}

// Mul scales the amount by an integer factor.
func (m Money) Mul(n int) Money { return m * Money(n) }

// Float64 returns the amount in currency units (for display math only).
func (m Money) Float64() float64 { return float64(m) / 100 }

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a bare decimal number (35.00), the
// shape the dashboard's forms submit and render.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*m = 0
		return nil
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
