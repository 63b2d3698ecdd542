// Package processor provides the value-processing pipeline for input controls.
//
// A processor conditions the value a control produces: scaling an axis,
// applying a deadzone to a stick, clamping a trigger. Processors are looked up
// by case-insensitive name in a Registry, configured from a flat set of named
// parameters and chained into a Stack attached to a control.
//
// # Architecture
//
//	┌────────────────────────────────────────────────────────────────────┐
//	│                         Processor Pipeline                          │
//	│                                                                     │
//	│  "scale(factor=2), clamp(min=-1, max=1)"                            │
//	│           │                                                         │
//	│           ▼                                                         │
//	│  ┌──────────────┐   ┌──────────────┐   ┌────────────────────────┐  │
//	│  │  ParseSpecs  │──▶│   Registry   │──▶│  ApplyParams (go-cty)  │  │
//	│  │  (spec.go)   │   │ (registry.go)│   │      (params.go)       │  │
//	│  └──────────────┘   └──────────────┘   └────────────────────────┘  │
//	│                                                 │                   │
//	│                                                 ▼                   │
//	│                                   ┌───────────────────────────┐    │
//	│                                   │  Stack[T].Process(value)  │    │
//	│                                   │       (stack.go)          │    │
//	│                                   └───────────────────────────┘    │
//	└────────────────────────────────────────────────────────────────────┘
//
// # Processor Contract
//
// Processors are stateless: Process must not keep anything between calls.
// Any value that has to persist belongs to the surrounding control or action
// layer. Each processor in a stack receives the output of the previous one,
// so the input is not necessarily the control's raw value.
//
// Configuration happens through exported fields. A parameter named "factor"
// sets the field Factor (or the field tagged `param:"factor"`); fields without
// a parameter keep the defaults set by the processor's constructor.
//
// # Errors
//
// An unknown processor name, an unknown parameter or a value type mismatch
// between a processor and its control are configuration errors returned to
// the caller. Registering a name twice is not an error: the last registration
// wins. TryGet reports absence as a normal outcome.
//
// # Usage
//
//	reg := processor.NewRegistry()
//	processor.MustRegisterFunc(reg, "scale", func() processor.Processor[float32] {
//	    return &Scale{Factor: 1}
//	}, "multiplies the value by factor")
//
//	stack, err := processor.Attach[float32](reg, ctrl, "scale(factor=4)")
//	if err != nil {
//	    return err
//	}
//	v := stack.Process(0.5) // 2
//
// # Thread Safety
//
// Registry is safe for concurrent use; it is normally populated at startup
// and read-mostly afterwards. A Stack is immutable once attached and can be
// shared between goroutines as long as its processors are stateless.
package processor
