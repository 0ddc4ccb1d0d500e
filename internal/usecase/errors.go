package usecase

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthenticated is returned when an operation requiring an identity is
// called without one.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrCurrentUserMissing is returned when a request carries a valid-looking
// identity whose backing user record no longer exists. Kept distinct from
// ErrUnauthenticated so callers can tell a stale session from a missing one.
var ErrCurrentUserMissing = errors.New("current user not found")

// ErrForbidden is returned when the requester is authenticated but does not
// own the target record.
var ErrForbidden = errors.New("forbidden")

// ErrValidation is returned for malformed input, e.g. a missing title.
var ErrValidation = errors.New("invalid input")
