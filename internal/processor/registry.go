package processor

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// Descriptor describes a registered processor implementation.
type Descriptor struct {
	// ValueType is the type of value the processor handles. Only controls
	// producing this type can use the processor.
	ValueType reflect.Type

	// Type is the concrete processor type New returns. Filled in by Register
	// when left nil.
	Type reflect.Type

	// New constructs a processor with its default parameters.
	New func() any

	// Doc is an optional human-readable description.
	Doc string
}

// Registration is a named Descriptor as held by a Registry.
type Registration struct {
	Name intern.String
	Descriptor
}

// Registry maps case-insensitive processor names to Descriptors.
//
// Registrations are normally added at startup and looked up when controls are
// configured. Registering a name again replaces the earlier registration.
//
// All public methods are thread-safe.
type Registry struct {
	mu      sync.RWMutex
	table   *intern.Table
	entries map[intern.Key]Registration
	logger  Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithTable makes the registry intern names through tbl instead of the
// default table.
func WithTable(tbl *intern.Table) Option {
	return func(r *Registry) { r.table = tbl }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		table:   intern.Default(),
		entries: make(map[intern.Key]Registration),
		logger:  noopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Register stores desc under name, replacing any earlier registration for the
// same name (ignoring case).
func (r *Registry) Register(name string, desc Descriptor) error {
	key := r.table.Intern(name)
	if key.IsEmpty() {
		return fmt.Errorf("%w: empty name", ErrInvalidRegistration)
	}
	if desc.New == nil {
		return fmt.Errorf("%w: %q has no constructor", ErrInvalidRegistration, name)
	}
	if desc.ValueType == nil {
		return fmt.Errorf("%w: %q has no value type", ErrInvalidRegistration, name)
	}
	inst := desc.New()
	if !handles(inst, desc.ValueType) {
		return fmt.Errorf("%w: %q: %T does not process %s", ErrInvalidRegistration, name, inst, desc.ValueType)
	}
	if desc.Type == nil {
		desc.Type = reflect.TypeOf(inst)
	}

	r.mu.Lock()
	prev, replaced := r.entries[key.Key()]
	r.entries[key.Key()] = Registration{Name: key, Descriptor: desc}
	r.mu.Unlock()

	if replaced {
		r.logger.Debug("processor registration replaced",
			"name", key.String(),
			"previous", prev.Type.String(),
			"type", desc.Type.String(),
		)
	} else {
		r.logger.Debug("processor registered",
			"name", key.String(),
			"type", desc.Type.String(),
			"value_type", desc.ValueType.String(),
		)
	}
	return nil
}

// RegisterFunc registers a processor constructor for values of type T.
func RegisterFunc[T any](r *Registry, name string, newFn func() Processor[T], doc string) error {
	if newFn == nil {
		return fmt.Errorf("%w: %q has no constructor", ErrInvalidRegistration, name)
	}
	return r.Register(name, Descriptor{
		ValueType: reflect.TypeFor[T](),
		Type:      reflect.TypeOf(newFn()),
		New:       func() any { return newFn() },
		Doc:       doc,
	})
}

// MustRegisterFunc is like RegisterFunc but panics on error.
// Useful for registering built-in processors at startup.
func MustRegisterFunc[T any](r *Registry, name string, newFn func() Processor[T], doc string) {
	if err := RegisterFunc(r, name, newFn, doc); err != nil {
		panic(err)
	}
}

// TryGet returns the descriptor registered under name (ignoring case).
// An unregistered name is not an error; ok is false.
func (r *Registry) TryGet(name string) (desc Descriptor, ok bool) {
	key := r.table.Intern(name)
	if key.IsEmpty() {
		return Descriptor{}, false
	}

	r.mu.RLock()
	reg, ok := r.entries[key.Key()]
	r.mu.RUnlock()

	return reg.Descriptor, ok
}

// Alias registers the descriptor currently held under target again under
// alias. Later changes to target do not affect the alias.
func (r *Registry) Alias(alias, target string) error {
	desc, ok := r.TryGet(target)
	if !ok {
		return fmt.Errorf("alias %q: %w: %q", alias, ErrUnknownProcessor, target)
	}
	return r.Register(alias, desc)
}

// Len returns the number of registered processors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Registrations returns a snapshot of all registrations, sorted by name.
func (r *Registry) Registrations() []Registration {
	r.mu.RLock()
	regs := make([]Registration, 0, len(r.entries))
	for _, reg := range r.entries {
		regs = append(regs, reg)
	}
	r.mu.RUnlock()

	sortRegistrations(regs)
	return regs
}

// Names returns the registered names in the casing they were registered
// with, sorted alphabetically ignoring case.
func (r *Registry) Names() []intern.String {
	regs := r.Registrations()
	names := make([]intern.String, len(regs))
	for i, reg := range regs {
		names[i] = reg.Name
	}
	return names
}

func sortRegistrations(regs []Registration) {
	slices.SortFunc(regs, func(a, b Registration) int {
		return intern.Compare(a.Name, b.Name)
	})
}

var controlType = reflect.TypeFor[Control]()

// handles reports whether inst has the Process method of a Processor for
// values of valueType.
func handles(inst any, valueType reflect.Type) bool {
	t := reflect.TypeOf(inst)
	if t == nil {
		return false
	}
	m, ok := t.MethodByName("Process")
	if !ok {
		return false
	}
	// In(0) is the receiver.
	mt := m.Type
	return mt.NumIn() == 3 && mt.NumOut() == 1 &&
		mt.In(1) == valueType && mt.In(2) == controlType && mt.Out(0) == valueType
}
