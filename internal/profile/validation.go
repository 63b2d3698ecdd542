package profile

import (
	"fmt"
	"strings"

	"github.com/nerrad567/gray-logic-input/internal/control"
	"github.com/nerrad567/gray-logic-input/internal/processor"
)

// Validate checks that p names a control and a known value type, and that
// its processors string builds against reg.
func Validate(reg *processor.Registry, p *Profile) error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.Control) == "" {
		return fmt.Errorf("%w: control is required", ErrInvalidProfile)
	}

	vt, err := control.ValueTypeByName(p.ValueType)
	if err != nil {
		return fmt.Errorf("%w: control %q: %w", ErrInvalidProfile, p.Control, err)
	}

	if err := processor.Validate(reg, vt, p.Processors); err != nil {
		return fmt.Errorf("%w: control %q: %w", ErrInvalidProfile, p.Control, err)
	}
	return nil
}

// BuildStack attaches the profile's processors to the control it describes.
// T must match the profile's value type.
func BuildStack[T any](reg *processor.Registry, p *Profile) (*processor.Stack[T], error) {
	ctl, err := p.NewControl()
	if err != nil {
		return nil, fmt.Errorf("%w: control %q: %w", ErrInvalidProfile, p.Control, err)
	}
	return processor.Attach[T](reg, ctl, p.Processors)
}
