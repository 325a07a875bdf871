// Package core provides money parsing and handling utilities.
//
// Amounts are backed by shopspring/decimal so running totals stay exact.
package core

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount of currency.
type Money struct {
	d decimal.Decimal
}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{d: d}
}

// Dollars builds a whole-unit amount, mostly used for seeds and tests.
func Dollars(n int64) Money {
	return Money{d: decimal.NewFromInt(n)}
}

// ParseMoney converts user input to Money.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and a leading sign.
// The sign is not validated here; callers decide whether non-positive values are allowed.
//
// Examples:
//
//	ParseMoney("12.34") -> 12.34, nil
//	ParseMoney("12,34") -> 12.34, nil
//	ParseMoney("-5")    -> -5, nil
//	ParseMoney("abc")   -> 0, ErrInvalidAmount
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{d: d}, nil
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }

func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }

func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

func (m Money) GreaterThan(o Money) bool { return m.d.GreaterThan(o.d) }

func (m Money) LessThan(o Money) bool { return m.d.LessThan(o.d) }

func (m Money) IsPositive() bool { return m.d.IsPositive() }

// displayPrecision is the number of significant digits shown to the user.
const displayPrecision = 6

// String renders the amount for display with six significant digits, switching
// to exponent form for large values: 950, 12.5, 12.3457, 1.005e+06.
func (m Money) String() string {
	return strconv.FormatFloat(m.d.InexactFloat64(), 'g', displayPrecision, 64)
}

// Exact renders the full decimal value for storage and messages.
func (m Money) Exact() string {
	return m.d.String()
}

// Decimal exposes the underlying value for storage and wire adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// Validate rejects zero and negative amounts.
func (m Money) Validate() error {
	if !m.d.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
