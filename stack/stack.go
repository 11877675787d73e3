// Package stack provides a fixed-capacity LIFO stack.
//
// The backing buffer is allocated once by New and never grows. Push past the
// capacity and DropN past the bottom are reported as errors in every build;
// neither operation changes the stack when it fails.
package stack

import (
	"github.com/wippyai/t9vm/errors"
)

// Stack is a bounded LIFO container. The zero value has capacity 0.
type Stack[T any] struct {
	name string
	buf  []T
	top  int
}

// New creates a stack holding at most capacity elements.
func New[T any](capacity int) *Stack[T] {
	return NewNamed[T]("", capacity)
}

// NewNamed creates a stack whose errors carry name in their path.
func NewNamed[T any](name string, capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{name: name, buf: make([]T, capacity)}
}

func (s *Stack[T]) path() []string {
	if s.name == "" {
		return nil
	}
	return []string{s.name}
}

// Push appends x.
func (s *Stack[T]) Push(x T) error {
	if s.top == len(s.buf) {
		return errors.Overflow(errors.PhaseTraverse, s.path(), len(s.buf))
	}
	s.buf[s.top] = x
	s.top++
	return nil
}

// PushN appends all of xs, or none of them if they do not fit.
func (s *Stack[T]) PushN(xs []T) error {
	if len(xs) > len(s.buf)-s.top {
		return errors.Overflow(errors.PhaseTraverse, s.path(), len(s.buf))
	}
	s.top += copy(s.buf[s.top:], xs)
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.top == 0 {
		return zero, false
	}
	s.top--
	x := s.buf[s.top]
	s.buf[s.top] = zero
	return x, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.top == 0 {
		var zero T
		return zero, false
	}
	return s.buf[s.top-1], true
}

// DropN removes exactly n elements.
func (s *Stack[T]) DropN(n int) error {
	if n < 0 || n > s.top {
		return errors.Underflow(errors.PhaseTraverse, s.path(), n, s.top)
	}
	s.top -= n
	return nil
}

// Clear empties the stack. Elements are not zeroed; they are overwritten by
// later pushes.
func (s *Stack[T]) Clear() {
	s.top = 0
}

func (s *Stack[T]) Len() int {
	return s.top
}

func (s *Stack[T]) Cap() int {
	return len(s.buf)
}

// All returns the contents from bottom to top. The slice aliases the stack's
// buffer and is only valid until the next mutation; callers must not modify it.
func (s *Stack[T]) All() []T {
	return s.buf[:s.top:s.top]
}
