package control

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// Vector2 is a two-axis value such as a stick or a d-pad.
type Vector2 struct {
	X float32
	Y float32
}

// Value type names accepted by ValueTypeByName.
const (
	ValueTypeAxis    = "axis"
	ValueTypeButton  = "button"
	ValueTypeStick   = "stick"
	ValueTypeVector2 = "vector2"
)

var valueTypes = map[string]reflect.Type{
	ValueTypeAxis:    reflect.TypeFor[float32](),
	ValueTypeButton:  reflect.TypeFor[float32](),
	ValueTypeStick:   reflect.TypeFor[Vector2](),
	ValueTypeVector2: reflect.TypeFor[Vector2](),
}

// ValueTypeByName resolves a value type name (case-insensitive) to the Go
// type controls of that kind produce.
func ValueTypeByName(name string) (reflect.Type, error) {
	t, ok := valueTypes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValueType, name)
	}
	return t, nil
}

// ValueTypeNames returns the recognised value type names, sorted.
func ValueTypeNames() []string {
	names := make([]string, 0, len(valueTypes))
	for n := range valueTypes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Control identifies an input control and the type of value it produces.
// Controls are immutable once created.
type Control struct {
	name      intern.String
	path      string
	valueType reflect.Type
}

// New creates a control producing values of type T.
func New[T any](name string) (*Control, error) {
	return NewWithType(name, reflect.TypeFor[T]())
}

// NewWithType creates a control producing values of valueType.
func NewWithType(name string, valueType reflect.Type) (*Control, error) {
	n := intern.Make(strings.TrimSpace(name))
	if n.IsEmpty() {
		return nil, ErrInvalidName
	}
	return &Control{
		name:      n,
		path:      "/" + n.String(),
		valueType: valueType,
	}, nil
}

// Name returns the control name.
func (c *Control) Name() intern.String {
	return c.name
}

// Path returns the control path, e.g. "/leftStick".
func (c *Control) Path() string {
	return c.path
}

// ValueType returns the Go type of the values the control produces.
func (c *Control) ValueType() reflect.Type {
	return c.valueType
}

// String implements fmt.Stringer.
func (c *Control) String() string {
	return fmt.Sprintf("%s<%s>", c.path, c.valueType)
}
