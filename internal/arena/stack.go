package arena

import "fmt"

// Stack is a LIFO arena made of fixed-size sub-stacks. Values can only be
// released from the top.
type Stack[T any] struct {
	subs   [][]T
	size   int
	growth Growth
	ind    int // current sub-stack
	pos    int // next free position in subs[ind]
}

// NewStack creates a stack arena with size slots per sub-stack.
// If size <= 0, DefaultBlockSize is used.
func NewStack[T any](size int, growth Growth) *Stack[T] {
	if size <= 0 {
		size = DefaultBlockSize
	}
	return &Stack[T]{
		subs:   [][]T{make([]T, size)},
		size:   size,
		growth: growth,
	}
}

// Push stores v on top of the stack and returns its slot.
func (s *Stack[T]) Push(v T) (*T, error) {
	if s.pos == s.size {
		if s.ind == len(s.subs)-1 {
			if !s.growth.allows(len(s.subs)) {
				return nil, fmt.Errorf("%w: %d sub-stacks of %d (%s)",
					ErrAllocationExhausted, len(s.subs), s.size, s.growth)
			}
			s.subs = append(s.subs, make([]T, s.size))
		}
		s.ind++
		s.pos = 0
	}
	p := &s.subs[s.ind][s.pos]
	s.pos++
	*p = v
	return p, nil
}

// MustPush is like Push but panics when the stack is exhausted.
func (s *Stack[T]) MustPush(v T) *T {
	p, err := s.Push(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.Len() == 0 {
		return zero, ErrEmptyContainer
	}
	if s.pos == 0 {
		s.ind--
		s.pos = s.size
	}
	s.pos--
	v := s.subs[s.ind][s.pos]
	s.subs[s.ind][s.pos] = zero
	return v, nil
}

// Top returns the slot on top of the stack.
func (s *Stack[T]) Top() (*T, error) {
	if s.Len() == 0 {
		return nil, ErrEmptyContainer
	}
	if s.pos == 0 {
		return &s.subs[s.ind-1][s.size-1], nil
	}
	return &s.subs[s.ind][s.pos-1], nil
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return s.ind*s.size + s.pos }

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool { return s.Len() == 0 }

// Reset drops every value but keeps the sub-stacks.
func (s *Stack[T]) Reset() {
	for i := 0; i <= s.ind && i < len(s.subs); i++ {
		clear(s.subs[i])
	}
	s.ind = 0
	s.pos = 0
}
