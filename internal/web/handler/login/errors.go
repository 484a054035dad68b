package login

import "errors"

var (
	// ErrInvalidFormData is returned when the login form cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")
	// ErrInternalServer is shown when session handling fails.
	ErrInternalServer = errors.New("internal server error")
)
