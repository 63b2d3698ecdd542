package builtin

import (
	"math"

	"github.com/nerrad567/gray-logic-input/internal/processor"
)

// Deadzone defaults shared by the axis and stick deadzones.
const (
	defaultDeadzoneMin = 0.125
	defaultDeadzoneMax = 0.925
)

// Scale multiplies the value by Factor.
type Scale struct {
	Factor float32
}

// Process implements processor.Processor.
func (p *Scale) Process(value float32, _ processor.Control) float32 {
	return value * p.Factor
}

// Invert negates the value.
type Invert struct{}

// Process implements processor.Processor.
func (p *Invert) Process(value float32, _ processor.Control) float32 {
	return -value
}

// Clamp limits the value to [Min, Max].
type Clamp struct {
	Min float32
	Max float32
}

// Process implements processor.Processor.
func (p *Clamp) Process(value float32, _ processor.Control) float32 {
	return clamp(value, p.Min, p.Max)
}

// Normalize maps [Min, Max] to [0, 1], or to [-1, 1] when Zero lies above
// Min. Zero is the raw value that represents the axis at rest.
type Normalize struct {
	Min  float32
	Max  float32
	Zero float32
}

// Process implements processor.Processor.
func (p *Normalize) Process(value float32, _ processor.Control) float32 {
	return normalize(value, p.Min, p.Max, p.Zero)
}

func normalize(value, lo, hi, zero float32) float32 {
	if zero < lo {
		zero = lo
	}
	if approximately(value, lo) {
		if lo < zero {
			return -1
		}
		return 0
	}
	if hi == lo {
		return 0
	}
	percentage := (value - lo) / (hi - lo)
	if lo < zero {
		return 2*percentage - 1
	}
	return percentage
}

// AxisDeadzone zeroes values whose magnitude is below Min, saturates values
// above Max and rescales the range in between to [0, 1], keeping the sign.
type AxisDeadzone struct {
	Min float32
	Max float32
}

// Process implements processor.Processor.
func (p *AxisDeadzone) Process(value float32, _ processor.Control) float32 {
	return deadzone(value, p.Min, p.Max)
}

func deadzone(value, lo, hi float32) float32 {
	abs := float32(math.Abs(float64(value)))
	if abs < lo {
		return 0
	}
	sign := float32(1)
	if value < 0 {
		sign = -1
	}
	if abs > hi || hi <= lo {
		return sign
	}
	return sign * ((abs - lo) / (hi - lo))
}

func clamp(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// approximately reports whether a and b are equal within float32 precision.
func approximately(a, b float32) bool {
	const epsilon = 1e-6
	return math.Abs(float64(a-b)) < epsilon
}
