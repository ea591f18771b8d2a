// Digit grouping for numeric text.

package format

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// Separator is the grouping separator inserted into the integer part.
	Separator = ','
	// DecimalPoint marks the start of the fractional part.
	DecimalPoint = '.'
	// groupSize is the number of characters per group.
	groupSize = 3
)

// FormatNumberString returns s with a Separator between every group of three
// characters of its integer part, counted from the right. Existing separators
// are removed first, so already grouped input comes back unchanged. Everything
// from the first DecimalPoint on is copied as is.
//
// Grouping is positional: each UTF-8 encoded character counts as one position
// whatever its script, and the input is never validated as a number.
//
// Parameters:
//   - s: The numeric text to format.
//
// Returns:
//   - string: The grouped text.
func FormatNumberString(s string) string {
	if strings.ContainsRune(s, Separator) {
		s = strings.ReplaceAll(s, string(Separator), "")
	}

	dot := strings.IndexRune(s, DecimalPoint)
	if dot < 0 {
		dot = len(s)
	}
	intPart, fracPart := s[:dot], s[dot:]

	n := utf8.RuneCountInString(intPart)
	if n <= groupSize {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + (n-1)/groupSize)
	for i, pos := 0, 0; pos < len(intPart); i++ {
		if i > 0 && (n-i)%groupSize == 0 {
			b.WriteByte(Separator)
		}
		// Invalid bytes decode with size 1 and are copied untouched.
		_, size := utf8.DecodeRuneInString(intPart[pos:])
		b.WriteString(intPart[pos : pos+size])
		pos += size
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatNumberBytes is the []byte form of FormatNumberString. The result is
// always a new slice; b is not modified.
func FormatNumberBytes(b []byte) []byte {
	return []byte(FormatNumberString(string(b)))
}

// FormatNumberInPlace inserts separators into *buf so that its integer part
// is grouped by three. Separators already sitting on a group boundary are kept
// and not duplicated, which makes the call idempotent. The fractional part is
// left untouched. A nil buf is a no-op.
//
// Only separators already on group boundaries are recognized. Other pre-existing separators are left where they are and the
// remaining digits are grouped around them: "12,34567" becomes "1,2,3,4567"
// and "123,4567" becomes "1,23,4567". Use FormatNumberString to regroup such
// input.
//
// The buffer only grows by the separators it gains; no other copy is made
// unless the backing array runs out of capacity.
func FormatNumberInPlace(buf *[]rune) {
	if buf == nil {
		return
	}
	s := *buf

	// end is the length of the integer part. It is counted without
	// separators and grows by one each time the cursor passes a boundary,
	// so it tracks the shifted content.
	end := integerLength(s)
	for i := 0; i < end; i++ {
		if i == 0 || (end-i)%groupSize != 0 {
			continue
		}
		if s[i] != Separator {
			if s[i-1] == Separator {
				// A misplaced separator already ends the previous group.
				continue
			}
			s = slices.Insert(s, i, Separator)
		}
		end++
		i++
	}
	*buf = s
}

// integerLength returns the number of non-separator runes before the first
// DecimalPoint, or the number of non-separator runes when there is none.
func integerLength(s []rune) int {
	n := 0
	for _, r := range s {
		switch r {
		case Separator:
			continue
		case DecimalPoint:
			return n
		}
		n++
	}
	return n
}
