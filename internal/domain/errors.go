package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an imported trip collides with an existing trip
// id and the caller has not chosen an overwrite-or-copy resolution.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrCorrupt is returned when a persisted snapshot fails to unmarshal.
// Loads fail closed: a corrupt snapshot is reported, never silently coerced.
var ErrCorrupt = errors.New("corrupt snapshot")
