package builtin

import (
	"math"

	"github.com/nerrad567/gray-logic-input/internal/control"
	"github.com/nerrad567/gray-logic-input/internal/processor"
)

// ScaleVector2 multiplies each component by its own factor.
type ScaleVector2 struct {
	X float32
	Y float32
}

// Process implements processor.Processor.
func (p *ScaleVector2) Process(value control.Vector2, _ processor.Control) control.Vector2 {
	return control.Vector2{X: value.X * p.X, Y: value.Y * p.Y}
}

// InvertVector2 negates the selected components.
type InvertVector2 struct {
	InvertX bool
	InvertY bool
}

// Process implements processor.Processor.
func (p *InvertVector2) Process(value control.Vector2, _ processor.Control) control.Vector2 {
	if p.InvertX {
		value.X = -value.X
	}
	if p.InvertY {
		value.Y = -value.Y
	}
	return value
}

// NormalizeVector2 scales the value to unit length. Zero vectors stay zero.
type NormalizeVector2 struct{}

// Process implements processor.Processor.
func (p *NormalizeVector2) Process(value control.Vector2, _ processor.Control) control.Vector2 {
	m := magnitude(value)
	if m < 1e-5 {
		return control.Vector2{}
	}
	return control.Vector2{X: value.X / m, Y: value.Y / m}
}

// StickDeadzone applies a radial deadzone: the vector's magnitude goes
// through the same mapping as AxisDeadzone while its direction is kept.
type StickDeadzone struct {
	Min float32
	Max float32
}

// Process implements processor.Processor.
func (p *StickDeadzone) Process(value control.Vector2, _ processor.Control) control.Vector2 {
	m := magnitude(value)
	adjusted := deadzone(m, p.Min, p.Max)
	if adjusted == 0 || m == 0 {
		return control.Vector2{}
	}
	f := adjusted / m
	return control.Vector2{X: value.X * f, Y: value.Y * f}
}

func magnitude(v control.Vector2) float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}
