// Package amount provides lenient parsing of monetary and numeric input.
// Malformed values coerce to zero instead of failing; each coercion is
// recorded as a Warning so stricter callers can surface them.
package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Warning records one value that failed to parse and was coerced to zero.
type Warning struct {
	Context string // where the value came from, e.g. "transactions.csv row 3: amount"
	Raw     string // the original input
}

// Coercer parses values and collects coercion warnings.
type Coercer struct {
	Warnings []Warning
}

// Amount parses raw as a decimal. Empty input is zero with no warning;
// unparsable input is zero with a warning.
func (c *Coercer) Amount(context, raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		c.Warnings = append(c.Warnings, Warning{Context: context, Raw: raw})
		return decimal.Zero
	}
	return d
}

// Int parses raw as an integer, flooring fractional input. Empty input is
// zero with no warning; unparsable input is zero with a warning.
func (c *Coercer) Int(context, raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		c.Warnings = append(c.Warnings, Warning{Context: context, Raw: raw})
		return 0
	}
	return int(d.IntPart())
}
