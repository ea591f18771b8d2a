package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders how long a formatting run took for the
// verbose report: microseconds below one millisecond, milliseconds below
// one second, and time.Duration's own form rounded to the millisecond above.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
