package normalizer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places used for every value.
const DefaultPrecision = 6

var (
	ErrMissingField   = errors.New("missing field")
	ErrDivisionByZero = errors.New("division by zero")
)

var hundred = decimal.NewFromInt(100)

// Formatter renders decimals as fixed-point strings without thousands
// separators.
type Formatter struct {
	Precision int32
}

// NewFormatter returns a Formatter; a negative precision selects the default.
func NewFormatter(precision int) Formatter {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return Formatter{Precision: int32(precision)}
}

func (f Formatter) Format(d decimal.Decimal) string {
	return d.StringFixed(f.Precision)
}

// FormatFixed rounds half away from zero to places decimals.
func FormatFixed(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

// Percentage returns part/whole*100 with two decimals.
func Percentage(part, whole decimal.Decimal) (string, error) {
	if whole.IsZero() {
		return "", fmt.Errorf("%w: percentage of zero", ErrDivisionByZero)
	}
	return FormatFixed(part.Mul(hundred).Div(whole), 2), nil
}

// Require returns the value of a decoded number or ErrMissingField.
func Require(field string, n decimal.NullDecimal) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return n.Decimal, nil
}

// ParseNumber parses a JSON scalar that may be a quoted or bare number.
// ok is false for null, empty or non-numeric input such as "market".
func ParseNumber(raw []byte) (decimal.Decimal, bool) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// UpperNonNumeric upper-cases enum-like values and leaves numbers alone.
func UpperNonNumeric(s string) string {
	if _, err := decimal.NewFromString(s); err == nil {
		return s
	}
	return strings.ToUpper(s)
}

const iso8601 = "2006-01-02T15:04:05-07:00"

// ISO8601 reformats an RFC 3339 timestamp (fractional seconds allowed) to
// second precision with a numeric offset.
func ISO8601(value string) (string, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return "", fmt.Errorf("parse time %q: %w", value, err)
	}
	return t.Format(iso8601), nil
}

// UnixMilliToISO converts a millisecond timestamp to ISO 8601 in UTC.
func UnixMilliToISO(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(iso8601)
}

// UnixToISO converts a second timestamp (fractions allowed) to ISO 8601 in UTC.
func UnixToISO(sec decimal.Decimal) string {
	return time.UnixMilli(sec.Mul(decimal.NewFromInt(1000)).IntPart()).UTC().Format(iso8601)
}
