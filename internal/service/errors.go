package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthorized covers every authentication failure: bad credentials,
	// an unusable token, an unknown subject or an inactive account. The
	// reason is logged, never returned to the caller.
	ErrUnauthorized = errors.New("unauthorized")

	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidContent = errors.New("invalid note content")
	ErrQuotaExceeded  = errors.New("note quota exceeded")
	ErrNoteNotFound   = errors.New("note not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Token validation failures. They are distinguishable for logging and tests;
// the Access Guard folds all of them into ErrUnauthorized.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)
