package builtin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/gray-logic-input/internal/control"
	"github.com/nerrad567/gray-logic-input/internal/intern"
	"github.com/nerrad567/gray-logic-input/internal/processor"
)

const delta = 1e-5

func newRegistry(t *testing.T) *processor.Registry {
	t.Helper()
	r := processor.NewRegistry(processor.WithTable(intern.NewTable()))
	require.NoError(t, Register(r))
	return r
}

func attachAxis(t *testing.T, r *processor.Registry, spec string) *processor.Stack[float32] {
	t.Helper()
	ctrl, err := control.New[float32]("axis")
	require.NoError(t, err)
	s, err := processor.Attach[float32](r, ctrl, spec)
	require.NoError(t, err)
	return s
}

func attachStick(t *testing.T, r *processor.Registry, spec string) *processor.Stack[control.Vector2] {
	t.Helper()
	ctrl, err := control.New[control.Vector2]("stick")
	require.NoError(t, err)
	s, err := processor.Attach[control.Vector2](r, ctrl, spec)
	require.NoError(t, err)
	return s
}

func TestRegister_AllNames(t *testing.T) {
	r := newRegistry(t)

	for _, name := range []string{
		"scale", "invert", "clamp", "normalize", "axisdeadzone",
		"scalevector2", "invertvector2", "normalizevector2", "stickdeadzone",
	} {
		_, ok := r.TryGet(name)
		assert.True(t, ok, name)
	}
	assert.Equal(t, 9, r.Len())
}

func TestAxisProcessors(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		name  string
		spec  string
		input float32
		want  float32
	}{
		{name: "scale default", spec: "scale", input: 0.5, want: 0.5},
		{name: "scale factor", spec: "scale(factor=4)", input: 0.5, want: 2},
		{name: "invert", spec: "invert", input: 0.25, want: -0.25},
		{name: "clamp default high", spec: "clamp", input: 1.5, want: 1},
		{name: "clamp custom low", spec: "clamp(min=-1, max=1)", input: -3, want: -1},
		{name: "clamp inside", spec: "clamp(min=-1, max=1)", input: 0.3, want: 0.3},
		{name: "normalize to unit", spec: "normalize(min=0, max=255)", input: 51, want: 0.2},
		{name: "normalize centred", spec: "normalize(min=0, max=255, zero=127.5)", input: 255, want: 1},
		{name: "normalize centred low", spec: "normalize(min=0, max=255, zero=127.5)", input: 0, want: -1},
		{name: "normalize min", spec: "normalize(min=10, max=20)", input: 10, want: 0},
		{name: "deadzone inside", spec: "axisDeadzone", input: 0.1, want: 0},
		{name: "deadzone saturate", spec: "axisDeadzone", input: -0.95, want: -1},
		{name: "deadzone rescale", spec: "axisDeadzone(min=0.2, max=0.8)", input: 0.5, want: 0.5},
		{name: "deadzone rescale negative", spec: "axisDeadzone(min=0.2, max=0.8)", input: -0.35, want: -0.25},
		{name: "chain", spec: "scale(factor=2), clamp(min=-1, max=1), invert", input: 0.75, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := attachAxis(t, r, tt.spec)
			assert.InDelta(t, tt.want, s.Process(tt.input), delta)
		})
	}
}

func TestStickProcessors(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		name  string
		spec  string
		input control.Vector2
		want  control.Vector2
	}{
		{name: "scale", spec: "scaleVector2(x=2, y=0.5)", input: control.Vector2{X: 1, Y: 1}, want: control.Vector2{X: 2, Y: 0.5}},
		{name: "invert both", spec: "invertVector2", input: control.Vector2{X: 1, Y: -1}, want: control.Vector2{X: -1, Y: 1}},
		{name: "invert y only", spec: "invertVector2(invertx=false)", input: control.Vector2{X: 1, Y: 1}, want: control.Vector2{X: 1, Y: -1}},
		{name: "normalize", spec: "normalizeVector2", input: control.Vector2{X: 3, Y: 4}, want: control.Vector2{X: 0.6, Y: 0.8}},
		{name: "normalize zero", spec: "normalizeVector2", input: control.Vector2{}, want: control.Vector2{}},
		{name: "deadzone inside", spec: "stickDeadzone", input: control.Vector2{X: 0.05, Y: 0.05}, want: control.Vector2{}},
		{name: "deadzone saturate", spec: "stickDeadzone", input: control.Vector2{X: 0, Y: 1}, want: control.Vector2{X: 0, Y: 1}},
		{name: "deadzone rescale", spec: "stickDeadzone(min=0.2, max=0.8)", input: control.Vector2{X: 0.5, Y: 0}, want: control.Vector2{X: 0.5, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := attachStick(t, r, tt.spec)
			got := s.Process(tt.input)
			assert.InDelta(t, tt.want.X, got.X, delta)
			assert.InDelta(t, tt.want.Y, got.Y, delta)
		})
	}
}

func TestStickDeadzone_KeepsDirection(t *testing.T) {
	r := newRegistry(t)
	s := attachStick(t, r, "stickDeadzone(min=0.1, max=0.9)")

	in := control.Vector2{X: 0.3, Y: 0.4}
	out := s.Process(in)

	inAngle := math.Atan2(float64(in.Y), float64(in.X))
	outAngle := math.Atan2(float64(out.Y), float64(out.X))
	assert.InDelta(t, inAngle, outAngle, delta)
	assert.InDelta(t, 0.5, magnitude(out), delta)
}

func TestValueTypeMismatch(t *testing.T) {
	r := newRegistry(t)

	ctrl, err := control.New[float32]("trigger")
	require.NoError(t, err)

	_, err = processor.Attach[float32](r, ctrl, "stickDeadzone")
	assert.ErrorIs(t, err, processor.ErrValueTypeMismatch)
}

func TestProcessors_Stateless(t *testing.T) {
	r := newRegistry(t)
	s := attachAxis(t, r, "axisDeadzone, normalize(min=-1, max=1, zero=0), scale(factor=0.5)")

	first := s.Process(0.6)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Process(0.6))
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry(processor.WithTable(intern.NewTable()))
	assert.Equal(t, 9, r.Len())

	names := r.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "axisDeadzone", names[0].String())
}
