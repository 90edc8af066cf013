package models

import "errors"

// Sentinel errors returned by usecases. The HTTP layer maps each one onto the
// response envelope and status code, so repositories and usecases never deal
// with HTTP semantics directly.
var (
	// ErrNotFound means the requested document does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden means the caller is authenticated but not allowed to act
	ErrForbidden = errors.New("operation not permitted")

	// ErrUnauthorized means the caller could not be authenticated
	ErrUnauthorized = errors.New("authentication required")

	// ErrConflict means a business-rule conflict (duplicate rating, dispute
	// already open, reply already given)
	ErrConflict = errors.New("conflicting state")

	// ErrValidation means the input failed field or business validation
	ErrValidation = errors.New("validation failed")
)
