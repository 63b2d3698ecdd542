package profile

import "errors"

var (
	// ErrProfileNotFound is returned when no profile exists for a control.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidProfile is returned when a profile fails validation.
	ErrInvalidProfile = errors.New("invalid profile")
)
