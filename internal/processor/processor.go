package processor

import (
	"reflect"

	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// Processor conditions values of type T.
//
// Implementations must be stateless: calling Process twice with the same
// value and control returns the same result.
type Processor[T any] interface {
	// Process returns the processed value. value may already have been
	// altered by earlier processors in the stack.
	Process(value T, control Control) T
}

// Control is the context a value is processed for.
type Control interface {
	Name() intern.String
	ValueType() reflect.Type
}

// Func adapts a plain function to the Processor interface.
type Func[T any] func(value T, control Control) T

// Process calls f(value, control).
func (f Func[T]) Process(value T, control Control) T {
	return f(value, control)
}

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
