package builtin

import (
	"fmt"

	"github.com/nerrad567/gray-logic-input/internal/control"
	"github.com/nerrad567/gray-logic-input/internal/processor"
)

// Names of the built-in processors.
const (
	NameScale            = "scale"
	NameInvert           = "invert"
	NameClamp            = "clamp"
	NameNormalize        = "normalize"
	NameAxisDeadzone     = "axisDeadzone"
	NameScaleVector2     = "scaleVector2"
	NameInvertVector2    = "invertVector2"
	NameNormalizeVector2 = "normalizeVector2"
	NameStickDeadzone    = "stickDeadzone"
)

// Register installs the built-in processors into r. Existing registrations
// with the same names are replaced.
func Register(r *processor.Registry) error {
	axis := []struct {
		name string
		doc  string
		fn   func() processor.Processor[float32]
	}{
		{NameScale, "multiplies the value by factor", func() processor.Processor[float32] {
			return &Scale{Factor: 1}
		}},
		{NameInvert, "negates the value", func() processor.Processor[float32] {
			return &Invert{}
		}},
		{NameClamp, "limits the value to [min, max]", func() processor.Processor[float32] {
			return &Clamp{Min: 0, Max: 1}
		}},
		{NameNormalize, "maps [min, max] to [0, 1] or [-1, 1] around zero", func() processor.Processor[float32] {
			return &Normalize{Min: 0, Max: 1, Zero: 0}
		}},
		{NameAxisDeadzone, "zeroes values inside min and saturates above max", func() processor.Processor[float32] {
			return &AxisDeadzone{Min: defaultDeadzoneMin, Max: defaultDeadzoneMax}
		}},
	}
	for _, p := range axis {
		if err := processor.RegisterFunc(r, p.name, p.fn, p.doc); err != nil {
			return fmt.Errorf("registering %s: %w", p.name, err)
		}
	}

	stick := []struct {
		name string
		doc  string
		fn   func() processor.Processor[control.Vector2]
	}{
		{NameScaleVector2, "multiplies x and y by their factors", func() processor.Processor[control.Vector2] {
			return &ScaleVector2{X: 1, Y: 1}
		}},
		{NameInvertVector2, "negates x and/or y", func() processor.Processor[control.Vector2] {
			return &InvertVector2{InvertX: true, InvertY: true}
		}},
		{NameNormalizeVector2, "scales the vector to unit length", func() processor.Processor[control.Vector2] {
			return &NormalizeVector2{}
		}},
		{NameStickDeadzone, "radial deadzone keeping the stick direction", func() processor.Processor[control.Vector2] {
			return &StickDeadzone{Min: defaultDeadzoneMin, Max: defaultDeadzoneMax}
		}},
	}
	for _, p := range stick {
		if err := processor.RegisterFunc(r, p.name, p.fn, p.doc); err != nil {
			return fmt.Errorf("registering %s: %w", p.name, err)
		}
	}

	return nil
}

// NewRegistry returns a registry holding only the built-in processors.
func NewRegistry(opts ...processor.Option) *processor.Registry {
	r := processor.NewRegistry(opts...)
	if err := Register(r); err != nil {
		// Built-in registrations are static; failure is a programming error.
		panic(err)
	}
	return r
}
