package processor

import (
	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// Stack is an ordered chain of processors attached to a control.
//
// Each processor receives the output of the one before it, together with the
// control the stack is attached to.
type Stack[T any] struct {
	control Control
	names   []intern.String
	procs   []Processor[T]
}

// NewStack creates an empty stack for control. control may be nil when the
// processors do not need a context.
func NewStack[T any](control Control) *Stack[T] {
	return &Stack[T]{control: control}
}

// Push appends p to the end of the stack under name.
func (s *Stack[T]) Push(name string, p Processor[T]) *Stack[T] {
	s.names = append(s.names, intern.Make(name))
	s.procs = append(s.procs, p)
	return s
}

// Process runs value through every processor in order and returns the result.
// An empty stack returns value unchanged.
func (s *Stack[T]) Process(value T) T {
	for _, p := range s.procs {
		value = p.Process(value, s.control)
	}
	return value
}

// Control returns the control the stack is attached to.
func (s *Stack[T]) Control() Control {
	return s.control
}

// Len returns the number of processors in the stack.
func (s *Stack[T]) Len() int {
	return len(s.procs)
}

// Names returns the processor names in stack order.
func (s *Stack[T]) Names() []intern.String {
	out := make([]intern.String, len(s.names))
	copy(out, s.names)
	return out
}
