package processor

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/gray-logic-input/internal/intern"
)

func TestRegistry_CaseInsensitiveLookup(t *testing.T) {
	r := NewRegistry(WithTable(intern.NewTable()))
	require.NoError(t, RegisterFunc(r, "scale", func() Processor[float32] { return &scaleProc{Factor: 1} }, ""))

	for _, name := range []string{"scale", "SCALE", "Scale", "sCaLe"} {
		desc, ok := r.TryGet(name)
		require.True(t, ok, name)
		assert.Equal(t, reflect.TypeFor[float32](), desc.ValueType)
		assert.Equal(t, reflect.TypeFor[*scaleProc](), desc.Type)
	}
}

func TestRegistry_TryGetUnknown(t *testing.T) {
	r := newTestRegistry()

	_, ok := r.TryGet("missing")
	assert.False(t, ok)

	_, ok = r.TryGet("")
	assert.False(t, ok)
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := NewRegistry(WithTable(intern.NewTable()))

	p1 := Descriptor{ValueType: reflect.TypeFor[float32](), New: func() any { return &scaleProc{Factor: 1} }, Doc: "first"}
	p2 := Descriptor{ValueType: reflect.TypeFor[float32](), New: func() any { return &offsetProc{} }, Doc: "second"}

	require.NoError(t, r.Register("scale", p1))
	require.NoError(t, r.Register("SCALE", p2))

	desc, ok := r.TryGet("scale")
	require.True(t, ok)
	assert.Equal(t, "second", desc.Doc)
	assert.Equal(t, reflect.TypeFor[*offsetProc](), desc.Type)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_InvalidRegistration(t *testing.T) {
	r := NewRegistry(WithTable(intern.NewTable()))

	tests := []struct {
		name string
		key  string
		desc Descriptor
	}{
		{name: "empty name", key: "", desc: Descriptor{ValueType: reflect.TypeFor[float32](), New: func() any { return &scaleProc{} }}},
		{name: "no constructor", key: "x", desc: Descriptor{ValueType: reflect.TypeFor[float32]()}},
		{name: "no value type", key: "x", desc: Descriptor{New: func() any { return &scaleProc{} }}},
		{name: "value type not processed", key: "x", desc: Descriptor{ValueType: reflect.TypeFor[float32](), New: func() any { return upperProc{} }}},
		{name: "not a processor", key: "x", desc: Descriptor{ValueType: reflect.TypeFor[float32](), New: func() any { return 42 }}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.key, tt.desc)
			assert.ErrorIs(t, err, ErrInvalidRegistration)
		})
	}
	assert.Zero(t, r.Len())

	assert.ErrorIs(t, RegisterFunc[float32](r, "nil", nil, ""), ErrInvalidRegistration)
}

func TestMustRegisterFunc_Panics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		MustRegisterFunc(r, "", func() Processor[float32] { return &scaleProc{} }, "")
	})
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry(WithTable(intern.NewTable()))
	for _, name := range []string{"Scale", "axisDeadzone", "invert", "Clamp"} {
		MustRegisterFunc(r, name, func() Processor[float32] { return &scaleProc{} }, "")
	}

	var got []string
	for _, n := range r.Names() {
		got = append(got, n.String())
	}
	assert.Equal(t, []string{"axisDeadzone", "Clamp", "invert", "Scale"}, got)

	regs := r.Registrations()
	require.Len(t, regs, 4)
	assert.Equal(t, "axisDeadzone", regs[0].Name.String())
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	r := newTestRegistry()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	errs := make(chan string, goroutines)

	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			if i%10 == 0 {
				MustRegisterFunc(r, "extra", func() Processor[float32] { return &scaleProc{} }, "")
			}
			if _, ok := r.TryGet("Scale"); !ok {
				errs <- "scale not found"
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}

type recordingLogger struct {
	mu    sync.Mutex
	debug []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = append(l.debug, msg)
}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}

func TestRegistry_LogsReplacement(t *testing.T) {
	r := NewRegistry(WithTable(intern.NewTable()))
	log := &recordingLogger{}
	r.SetLogger(log)

	MustRegisterFunc(r, "scale", func() Processor[float32] { return &scaleProc{} }, "")
	MustRegisterFunc(r, "Scale", func() Processor[float32] { return &scaleProc{} }, "")

	assert.Equal(t, []string{"processor registered", "processor registration replaced"}, log.debug)
}

func TestRegistry_Alias(t *testing.T) {
	r := newTestRegistry()

	require.NoError(t, r.Alias("Multiply", "SCALE"))

	desc, ok := r.TryGet("multiply")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[*scaleProc](), desc.Type)
	assert.Equal(t, 4, r.Len())

	stack, err := Attach[float32](r, nil, "MULTIPLY(factor=3)")
	require.NoError(t, err)
	assert.Equal(t, float32(6), stack.Process(2))
}

func TestRegistry_AliasUnknownTarget(t *testing.T) {
	r := newTestRegistry()

	err := r.Alias("dz", "deadzone")
	require.ErrorIs(t, err, ErrUnknownProcessor)

	_, ok := r.TryGet("dz")
	assert.False(t, ok)
}

func TestRegistry_RegisterDescriptorForFunc(t *testing.T) {
	r := NewRegistry(WithTable(intern.NewTable()))
	double := Func[float32](func(v float32, _ Control) float32 { return v * 2 })

	require.NoError(t, r.Register("double", Descriptor{
		ValueType: reflect.TypeFor[float32](),
		New:       func() any { return double },
	}))

	assert.NoError(t, Validate(r, reflect.TypeFor[float32](), "double"))
	assert.ErrorIs(t, Validate(r, reflect.TypeFor[string](), "double"), ErrValueTypeMismatch)
}
