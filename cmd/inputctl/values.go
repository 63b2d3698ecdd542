package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/nerrad567/gray-logic-input/internal/control"
	"github.com/nerrad567/gray-logic-input/internal/processor"
)

// processValues runs each raw value through the processors attached to ctl
// and returns the formatted results in order.
func processValues(reg *processor.Registry, ctl *control.Control, processors string, raw []string) ([]string, error) {
	switch ctl.ValueType() {
	case reflect.TypeFor[float32]():
		return runStack(reg, ctl, processors, raw, parseAxis, formatAxis)
	case reflect.TypeFor[control.Vector2]():
		return runStack(reg, ctl, processors, raw, parseVector2, formatVector2)
	default:
		return nil, fmt.Errorf("%w: %s", control.ErrUnknownValueType, ctl.ValueType())
	}
}

func runStack[T any](
	reg *processor.Registry,
	ctl *control.Control,
	processors string,
	raw []string,
	parse func(string) (T, error),
	format func(T) string,
) ([]string, error) {
	stack, err := processor.Attach[T](reg, ctl, processors)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, format(stack.Process(v)))
	}
	return out, nil
}

func parseAxis(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid axis value %q: expected a number", s)
	}
	return float32(f), nil
}

func formatAxis(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// parseVector2 parses "x,y".
func parseVector2(s string) (control.Vector2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return control.Vector2{}, fmt.Errorf("invalid vector value %q: expected x,y", s)
	}
	x, errX := parseAxis(xs)
	y, errY := parseAxis(ys)
	if errX != nil || errY != nil {
		return control.Vector2{}, fmt.Errorf("invalid vector value %q: expected x,y", s)
	}
	return control.Vector2{X: x, Y: y}, nil
}

func formatVector2(v control.Vector2) string {
	return formatAxis(v.X) + "," + formatAxis(v.Y)
}
