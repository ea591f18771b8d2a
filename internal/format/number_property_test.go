package format

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// digitStrings generates strings of digits drawn from [lo, hi].
func digitStrings(lo, hi rune) gopter.Gen {
	return gen.SliceOf(gen.RuneRange(lo, hi)).Map(func(r []rune) string {
		return string(r)
	})
}

// expectedSeparators is ⌈n/3⌉ − 1 for n > 0 and 0 otherwise.
func expectedSeparators(n int) int {
	if n == 0 {
		return 0
	}
	return (n - 1) / groupSize
}

func TestFormatNumberString_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("separator count is ceil(n/3)-1 and stripping restores input", prop.ForAll(
		func(s string) bool {
			out := FormatNumberString(s)
			n := len([]rune(s))
			return strings.Count(out, ",") == expectedSeparators(n) &&
				strings.ReplaceAll(out, ",", "") == s
		},
		digitStrings('0', '9'),
	))

	properties.Property("formatting is idempotent", prop.ForAll(
		func(s string) bool {
			once := FormatNumberString(s)
			return FormatNumberString(once) == once
		},
		digitStrings('0', '9'),
	))

	properties.Property("fractional part is preserved", prop.ForAll(
		func(intPart, fracPart string) bool {
			s := intPart + "." + fracPart
			out := FormatNumberString(s)
			return strings.HasSuffix(out, "."+fracPart) &&
				out[strings.IndexByte(out, '.'):] == s[strings.IndexByte(s, '.'):]
		},
		digitStrings('0', '9'),
		digitStrings('0', '9'),
	))

	properties.Property("in-place matches allocating on ungrouped input", prop.ForAll(
		func(intPart, fracPart string, withFraction bool) bool {
			s := intPart
			if withFraction {
				s += "." + fracPart
			}
			buf := []rune(s)
			FormatNumberInPlace(&buf)
			return string(buf) == FormatNumberString(s)
		},
		digitStrings('0', '9'),
		digitStrings('0', '9'),
		gen.Bool(),
	))

	properties.Property("in-place is idempotent", prop.ForAll(
		func(s string) bool {
			buf := []rune(s)
			FormatNumberInPlace(&buf)
			once := string(buf)
			FormatNumberInPlace(&buf)
			return string(buf) == once
		},
		digitStrings('0', '9'),
	))

	properties.Property("grouping is script-agnostic", prop.ForAll(
		func(s string) bool {
			persian := strings.Map(func(r rune) rune { return r - '0' + '۰' }, s)
			ascii := FormatNumberString(s)
			back := strings.Map(func(r rune) rune {
				if r == ',' {
					return r
				}
				return r - '۰' + '0'
			}, FormatNumberString(persian))
			return back == ascii
		},
		digitStrings('0', '9'),
	))

	properties.TestingRun(t)
}
