package appointments

import "errors"

// Common errors returned by the appointment lifecycle.
var (
	// ErrMissingFields means a required booking field was left empty.
	ErrMissingFields = errors.New("please fill full details")
	// ErrValidation means a field failed a format, length or enum constraint.
	// The wrapped detail names the violated constraint.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound means no appointment exists with the given id.
	ErrNotFound = errors.New("appointment not found")
)
