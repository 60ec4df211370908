package store

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned before any network call when the base
// URL or the lookup key is missing.
var ErrNotConfigured = errors.New("store: missing base URL or title")

// StatusError is a non-success response from the wiki. The 404-on-fetch
// case never surfaces as a StatusError; it synthesizes an empty day.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.Code)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
