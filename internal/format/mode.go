package format

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mode selects which of the two grouping operations is applied.
type Mode int

const (
	// ModeAllocate uses FormatNumberString.
	ModeAllocate Mode = iota
	// ModeInPlace uses FormatNumberInPlace on a rune buffer.
	ModeInPlace
)

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeAllocate:
		return "allocate"
	case ModeInPlace:
		return "inplace"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a Mode. The empty string selects
// ModeAllocate.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "allocate", "alloc":
		return ModeAllocate, nil
	case "inplace", "in-place", "mut":
		return ModeInPlace, nil
	}
	return ModeAllocate, fmt.Errorf("unknown format mode %q (want allocate or inplace)", name)
}

// Apply formats s with the operation selected by m. ModeInPlace falls back
// to FormatNumberString when s is not valid UTF-8, since the rune conversion
// would replace invalid bytes with U+FFFD.
func (m Mode) Apply(s string) string {
	if m == ModeInPlace && utf8.ValidString(s) {
		buf := []rune(s)
		FormatNumberInPlace(&buf)
		return string(buf)
	}
	return FormatNumberString(s)
}
