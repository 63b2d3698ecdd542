package processor

import (
	"fmt"
	"reflect"
)

// New instantiates the processor registered under name for values of type T
// and applies params to it.
//
// Returns:
//   - ErrUnknownProcessor: name is not registered
//   - ErrValueTypeMismatch: the processor does not handle values of type T
//   - ErrUnknownParameter, ErrInvalidParameter: params do not fit the processor
func New[T any](r *Registry, name string, params Params) (Processor[T], error) {
	desc, ok := r.TryGet(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProcessor, name)
	}

	want := reflect.TypeFor[T]()
	if desc.ValueType != want {
		return nil, fmt.Errorf("%w: processor %q handles %s, not %s",
			ErrValueTypeMismatch, name, desc.ValueType, want)
	}

	inst := desc.New()
	if err := ApplyParams(inst, params); err != nil {
		return nil, fmt.Errorf("processor %q: %w", name, err)
	}

	p, ok := inst.(Processor[T])
	if !ok {
		return nil, fmt.Errorf("%w: processor %q (%T) does not process %s",
			ErrValueTypeMismatch, name, inst, want)
	}
	return p, nil
}

// Attach builds a stack for control from a processors string such as
// "scale(factor=2), invert".
//
// The control's value type must be T; a mismatch is reported here rather than
// on first use. Any unknown processor or parameter fails the whole stack.
func Attach[T any](r *Registry, control Control, processors string) (*Stack[T], error) {
	want := reflect.TypeFor[T]()
	if control != nil && control.ValueType() != want {
		return nil, fmt.Errorf("%w: control %q produces %s, not %s",
			ErrValueTypeMismatch, control.Name().String(), control.ValueType(), want)
	}

	specs, err := ParseSpecs(processors)
	if err != nil {
		return nil, err
	}

	stack := NewStack[T](control)
	for _, spec := range specs {
		p, err := New[T](r, spec.Name, spec.Params)
		if err != nil {
			if control != nil {
				return nil, fmt.Errorf("control %q: %w", control.Name().String(), err)
			}
			return nil, err
		}
		stack.Push(spec.Name, p)
	}

	if control != nil {
		r.logger.Debug("processors attached",
			"control", control.Name().String(),
			"processors", len(specs),
		)
	}
	return stack, nil
}

// Validate checks a processors string against the registry for controls
// producing valueType, without building a stack. It reports the same errors
// Attach would.
func Validate(r *Registry, valueType reflect.Type, processors string) error {
	specs, err := ParseSpecs(processors)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		desc, ok := r.TryGet(spec.Name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownProcessor, spec.Name)
		}
		if desc.ValueType != valueType {
			return fmt.Errorf("%w: processor %q handles %s, not %s",
				ErrValueTypeMismatch, spec.Name, desc.ValueType, valueType)
		}
		inst := desc.New()
		if !handles(inst, valueType) {
			return fmt.Errorf("%w: processor %q (%T) does not process %s",
				ErrValueTypeMismatch, spec.Name, inst, valueType)
		}
		if err := ApplyParams(inst, spec.Params); err != nil {
			return fmt.Errorf("processor %q: %w", spec.Name, err)
		}
	}
	return nil
}
