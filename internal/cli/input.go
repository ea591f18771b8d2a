package cli

import (
	"bufio"
	"io"
	"strings"

	apperrors "github.com/agbru/numgroup/internal/errors"
)

// MaxLineSize is the longest input line accepted, in bytes. Numbers are
// text, so they can be far longer than bufio's default token size.
const MaxLineSize = 64 << 20

// ReadInputs returns the non-blank lines of r with surrounding whitespace
// removed, one number per line.
func ReadInputs(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var inputs []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.IOError{Op: "read input", Cause: err}
	}
	return inputs, nil
}
