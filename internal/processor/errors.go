package processor

import "errors"

// Domain errors for the processor package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, processor.ErrUnknownProcessor) {
//	    // handle missing processor
//	}
var (
	// ErrUnknownProcessor is returned when a processor name is not registered.
	ErrUnknownProcessor = errors.New("processor: unknown processor")

	// ErrUnknownParameter is returned when a parameter does not match any
	// configurable field of the processor.
	ErrUnknownParameter = errors.New("processor: unknown parameter")

	// ErrInvalidParameter is returned when a parameter value cannot be
	// converted to the type of its field.
	ErrInvalidParameter = errors.New("processor: invalid parameter value")

	// ErrValueTypeMismatch is returned when a processor's value type does not
	// match the value type of the control or stack it is used with.
	ErrValueTypeMismatch = errors.New("processor: value type mismatch")

	// ErrInvalidSpec is returned when a processors string cannot be parsed.
	ErrInvalidSpec = errors.New("processor: invalid processors string")

	// ErrInvalidRegistration is returned when a registration has no name,
	// no constructor or no value type.
	ErrInvalidRegistration = errors.New("processor: invalid registration")
)
