package document

import (
	"fmt"
	"time"
)

const (
	// layoutKey is the wire title format, e.g. "2025-08-03 (Sun)".
	// The weekday abbreviation is always English regardless of locale.
	layoutKey = "2006-01-02 (Mon)"
	// layoutISO is the format accepted from the user for jumps.
	layoutISO = "2006-01-02"
)

// ErrInvalidDate reports a malformed user-supplied date.
type ErrInvalidDate struct {
	Input string
}

func (e *ErrInvalidDate) Error() string {
	return fmt.Sprintf("invalid date %q, want YYYY-MM-DD", e.Input)
}

// FormatKey renders the title key for a calendar day.
func FormatKey(t time.Time) string {
	return t.Format(layoutKey)
}

// ParseDate validates a user-supplied YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return time.Time{}, &ErrInvalidDate{Input: s}
	}
	return t, nil
}
