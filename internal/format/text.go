package format

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Grouper is implemented by values that can render themselves as grouped
// numeric text.
type Grouper interface {
	Grouped() string
}

// Text is numeric text with a method form of FormatNumberString.
type Text string

// Grouped returns t formatted with FormatNumberString.
func (t Text) Grouped() string {
	return FormatNumberString(string(t))
}

var _ Grouper = Text("")

// FormatBigInt groups the decimal representation of x. The sign stays in
// front of the first group. A nil x formats as "<nil>", like x.String().
func FormatBigInt(x *big.Int) string {
	if x == nil {
		return "<nil>"
	}
	return formatSigned(x.String())
}

// FormatDecimal groups the integer part of d. The fractional digits are
// kept exactly as d.String() prints them.
func FormatDecimal(d decimal.Decimal) string {
	return formatSigned(d.String())
}

// formatSigned groups s with a leading minus sign kept out of the grouping.
func formatSigned(s string) string {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + FormatNumberString(rest)
	}
	return FormatNumberString(s)
}
