package auth

import "errors"

var (
	// ErrSecretMismatch is returned when a submitted secret does not match
	// the stored one.
	ErrSecretMismatch = errors.New("incorrect admin secret")
	// ErrCurrentMismatch is returned on a change attempt whose current
	// secret is wrong.
	ErrCurrentMismatch = errors.New("current secret is incorrect")
	// ErrConfirmationMismatch is returned when the new secret and its
	// confirmation differ.
	ErrConfirmationMismatch = errors.New("new secrets do not match")
	// ErrSecretTooShort is returned when the new secret is under the
	// minimum length.
	ErrSecretTooShort = errors.New("new secret must be at least 4 characters")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
