package kai

// Swap is a cell that allows consuming transformations on held data. It is
// useful when a mutable struct field wraps a functional, build-a-new-value
// API: Hold takes the value out, runs the transformation, and puts the
// result back in place.
//
// Swap is not safe for concurrent use.
type Swap[T any] struct {
	v T
}

// NewSwap returns a Swap holding v.
func NewSwap[T any](v T) *Swap[T] {
	return &Swap[T]{v: v}
}

// Hold replaces the held value with f applied to it.
func (s *Swap[T]) Hold(f func(T) T) {
	s.v = f(s.v)
}

// Get returns the held value.
func (s *Swap[T]) Get() T {
	return s.v
}

// Set replaces the held value.
func (s *Swap[T]) Set(v T) {
	s.v = v
}

// Into returns the held value, leaving the zero value behind. Use it when
// handing the value off for good.
func (s *Swap[T]) Into() T {
	v := s.v
	var zero T
	s.v = zero
	return v
}
