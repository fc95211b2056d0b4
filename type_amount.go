package budget

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount is negative or cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount represents a monetary value in major units (e.g. dollars).
//
// Amounts carry no currency, the ledger holds a single display currency.
type Amount struct {
	value decimal.Decimal
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
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

// A creates an Amount from a number.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

var (
	decimalComma    = regexp.MustCompile(`^\d+,\d{1,2}$`)
	thousandsCommas = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d*)?$`)
)

// ParseAmount parses a user supplied amount.
//
// Leading and trailing spaces are ignored, so is a leading currency symbol
// ($, € or £). A single comma followed by one or two digits is a decimal
// separator ("12,5"). Otherwise commas must group thousands ("1,000.50"), any
// other comma is rejected. Negative amounts are rejected with
// ErrInvalidAmount, zero is accepted.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	for _, sym := range []string{"$", "€", "£"} {
		s = strings.TrimPrefix(s, sym)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, ErrInvalidAmount
	}
	switch {
	case decimalComma.MatchString(s):
		s = strings.Replace(s, ",", ".", 1)
	case thousandsCommas.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	case strings.Contains(s, ","):
		return Amount{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: d}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal         { return a.value }
func (a Amount) String() string                   { return a.value.String() }
func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) Cmp(b Amount) int                 { return a.value.Cmp(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) Neg() Amount                      { return Amount{value: a.value.Neg()} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// Format returns the amount formatted in the given currency, e.g. "$1,200.00"
// or "-$200.00". Unknown currency codes are formatted with two decimals and
// the code as suffix.
func (a Amount) Format(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return a.value.StringFixed(2) + " " + currency
	}
	minor := a.value.Shift(int32(cur.Fraction)).Round(0)
	if minor.BigInt().IsInt64() {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatMinor(cur.Formatter(), minor)
}

// formatMinor applies the currency formatter to an amount of minor units
// that does not fit in an int64.
func formatMinor(f *money.Formatter, minor decimal.Decimal) string {
	digits := minor.Abs().String()
	if len(digits) <= f.Fraction {
		digits = strings.Repeat("0", f.Fraction-len(digits)+1) + digits
	}
	integer, fraction := digits[:len(digits)-f.Fraction], digits[len(digits)-f.Fraction:]

	if f.Thousand != "" {
		var b strings.Builder
		for i, r := range integer {
			if i > 0 && (len(integer)-i)%3 == 0 {
				b.WriteString(f.Thousand)
			}
			b.WriteRune(r)
		}
		integer = b.String()
	}

	number := integer
	if f.Fraction > 0 {
		number += f.Decimal + fraction
	}
	s := strings.Replace(f.Template, "1", number, 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		s = "-" + s
	}
	return s
}

// MarshalJSON writes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.value.UnmarshalJSON(data)
}
