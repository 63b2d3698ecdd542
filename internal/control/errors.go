package control

import "errors"

// Domain errors for the control package.
var (
	// ErrUnknownValueType is returned when a value type name is not recognised.
	ErrUnknownValueType = errors.New("control: unknown value type")

	// ErrInvalidName is returned when a control name is empty.
	ErrInvalidName = errors.New("control: invalid name")
)
