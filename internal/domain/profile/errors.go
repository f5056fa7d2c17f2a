package profile

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound indicates no stored record matches the share identifier.
var ErrRecordNotFound = errors.New("share record not found")

// ErrMalformedResponse indicates the model output was not parseable as JSON
// even after extraction.
var ErrMalformedResponse = errors.New("model response is not valid JSON")

// ErrStoreUnavailable indicates the record store could not be reached.
// Append failures are degraded to "shown but not saved"; read failures
// surface to the caller.
var ErrStoreUnavailable = errors.New("record store unavailable")

// ValidationError reports the first incomplete form field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answer for %q is required", e.Field)
}
