package processor

import (
	"reflect"

	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// testControl is a minimal Control for tests.
type testControl struct {
	name      intern.String
	valueType reflect.Type
}

func newTestControl[T any](name string) *testControl {
	return &testControl{name: intern.Make(name), valueType: reflect.TypeFor[T]()}
}

func (c *testControl) Name() intern.String     { return c.name }
func (c *testControl) ValueType() reflect.Type { return c.valueType }

// scaleProc multiplies by Factor.
type scaleProc struct {
	Factor float32
}

func (p *scaleProc) Process(v float32, _ Control) float32 { return v * p.Factor }

// offsetProc adds By; Label is hidden from configuration.
type offsetProc struct {
	By      float32 `param:"by"`
	Enabled bool
	Label   string `param:"-"`
	secret  int
}

func (p *offsetProc) Process(v float32, _ Control) float32 {
	if !p.Enabled {
		return v
	}
	return v + p.By
}

// upperProc handles strings, for value type mismatch tests.
type upperProc struct{}

func (upperProc) Process(v string, _ Control) string { return v }

func newTestRegistry() *Registry {
	r := NewRegistry(WithTable(intern.NewTable()))
	MustRegisterFunc(r, "scale", func() Processor[float32] { return &scaleProc{Factor: 1} }, "multiply")
	MustRegisterFunc(r, "offset", func() Processor[float32] { return &offsetProc{Enabled: true} }, "add")
	MustRegisterFunc(r, "upper", func() Processor[string] { return upperProc{} }, "")
	return r
}
