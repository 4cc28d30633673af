package backend

import "errors"

// Error taxonomy for store operations. Implementations wrap these so
// callers can branch with errors.Is without knowing the driver.
var (
	// ErrNotFound: an expected row is absent. Not a failure for the
	// resolver, which falls back to creation.
	ErrNotFound = errors.New("backend: not found")

	// ErrBackendUnavailable: network or connection failure.
	ErrBackendUnavailable = errors.New("backend: unavailable")

	// ErrConstraintViolation: the backend rejected a malformed or
	// duplicate row.
	ErrConstraintViolation = errors.New("backend: constraint violation")

	// ErrPartialFailure: some but not all rows of a multi-row insert
	// were applied. No compensating rollback exists.
	ErrPartialFailure = errors.New("backend: partial failure")
)
