package processor

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// paramTag overrides the parameter name of a field: `param:"min"`.
// `param:"-"` hides a field from configuration.
const paramTag = "param"

// Params is a flat set of processor parameters keyed by name.
// Names are matched against configurable fields ignoring case.
type Params map[string]cty.Value

// ParamValue converts a Go value into a parameter value.
func ParamValue(v any) (cty.Value, error) {
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("inferring parameter type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// Names returns the parameter names, sorted.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for n := range p {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// field is a configurable field of a processor struct.
type field struct {
	name  string
	index []int
}

// fieldCache caches configurable fields per struct type.
var fieldCache sync.Map // reflect.Type -> map[intern.Key]field

// ApplyParams sets the configurable fields of target from params.
//
// target must be a pointer to a struct. Every exported field is configurable
// unless tagged `param:"-"`. Fields not named in params keep their current
// values.
//
// Returns:
//   - ErrUnknownParameter: a parameter matches no configurable field
//   - ErrInvalidParameter: a value cannot be converted to its field's type
func ApplyParams(target any, params Params) error {
	if len(params) == 0 {
		return nil
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		// Nothing to configure: every parameter is unknown.
		return fmt.Errorf("%w: %q", ErrUnknownParameter, params.Names()[0])
	}
	elem := rv.Elem()
	fields := configurableFields(elem.Type())

	set := make(map[string]string, len(params))
	for _, name := range params.Names() {
		f, ok := fields[intern.Make(name).Key()]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
		}
		if prev, dup := set[f.name]; dup {
			return fmt.Errorf("%w: %q and %q both set %s", ErrInvalidParameter, prev, name, f.name)
		}
		set[f.name] = name
		if err := decodeParam(params[name], elem.FieldByIndex(f.index)); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidParameter, name, err)
		}
	}
	return nil
}

// decodeParam converts val to the type of fv and stores it.
func decodeParam(val cty.Value, fv reflect.Value) error {
	if val.IsNull() {
		return fmt.Errorf("null value")
	}
	ty, err := gocty.ImpliedType(fv.Interface())
	if err != nil {
		return fmt.Errorf("unsupported field type %s: %w", fv.Type(), err)
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), ty.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, fv.Addr().Interface())
}

// configurableFields returns the exported fields of t keyed by interned
// parameter name.
func configurableFields(t reflect.Type) map[intern.Key]field {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[intern.Key]field)
	}

	fields := make(map[intern.Key]field)
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup(paramTag); ok {
			tagName := strings.TrimSpace(strings.Split(tag, ",")[0])
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields[intern.Make(name).Key()] = field{name: name, index: sf.Index}
	}

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.(map[intern.Key]field)
}

// ParamNames returns the configurable parameter names of a processor, sorted
// alphabetically ignoring case. Non-struct processors have none.
func ParamNames(processor any) []string {
	t := reflect.TypeOf(processor)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	fields := configurableFields(t)
	names := make([]intern.String, 0, len(fields))
	for _, f := range fields {
		names = append(names, intern.Make(f.name))
	}
	intern.Sort(names)

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}
