package page

import "errors"

var (
	// ErrUnknownField is returned when a caller names a form field that does not exist.
	ErrUnknownField = errors.New("unknown form field")
	// ErrNoPreferenceStore is returned when a session is built without a preference store.
	ErrNoPreferenceStore = errors.New("page session requires a preference store")
	// ErrNoScheduler is returned when a session is built without a scheduler.
	ErrNoScheduler = errors.New("page session requires a scheduler")
)
