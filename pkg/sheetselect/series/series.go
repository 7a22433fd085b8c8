// Package series provides Series, an immutable ordered sequence of unique
// identifiers with constant-time index lookup.
package series

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrDuplicateValue indicates a Series was built from a list with repeats.
var ErrDuplicateValue = errors.New("duplicate value in series")

// ErrValueNotFound indicates a range endpoint is not a member of the Series.
var ErrValueNotFound = errors.New("value not found in series")

// Series is an ordered list of unique values. It is never mutated after
// construction.
type Series[T comparable] struct {
	values []T
	index  map[T]int
}

// New builds a Series from values. The slice is copied.
func New[T comparable](values ...T) (*Series[T], error) {
	s := &Series[T]{
		values: slices.Clone(values),
		index:  make(map[T]int, len(values)),
	}
	for i, v := range s.values {
		if _, exists := s.index[v]; exists {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateValue, v)
		}
		s.index[v] = i
	}
	return s, nil
}

// Empty returns a Series with no values.
func Empty[T comparable]() *Series[T] {
	return &Series[T]{index: map[T]int{}}
}

// Len returns the number of values.
func (s *Series[T]) Len() int {
	return len(s.values)
}

// At returns the value stored at index i.
func (s *Series[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.values) {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// IndexOf returns the stored index of v.
func (s *Series[T]) IndexOf(v T) (int, bool) {
	i, ok := s.index[v]
	return i, ok
}

// Has reports whether v is a member.
func (s *Series[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// First returns the first value.
func (s *Series[T]) First() (T, bool) {
	return s.At(0)
}

// Last returns the last value.
func (s *Series[T]) Last() (T, bool) {
	return s.At(len(s.values) - 1)
}

// Values returns a copy of the values in storage order.
func (s *Series[T]) Values() []T {
	return slices.Clone(s.values)
}

// Slice returns a copy of the values at indexes [start, end). It panics if
// the bounds are out of range, like slicing.
func (s *Series[T]) Slice(start, end int) []T {
	return slices.Clone(s.values[start:end])
}

// All iterates the values in storage order.
func (s *Series[T]) All() iter.Seq[T] {
	return slices.Values(s.values)
}

// Range returns all values between a and b inclusive, in storage order,
// regardless of which argument comes first.
func (s *Series[T]) Range(a, b T) ([]T, error) {
	aIndex, ok := s.index[a]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrValueNotFound, a)
	}
	bIndex, ok := s.index[b]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrValueNotFound, b)
	}
	start, end := min(aIndex, bIndex), max(aIndex, bIndex)
	return slices.Clone(s.values[start : end+1]), nil
}

// bounds returns the lowest and highest stored index among values.
// Values that are not members are ignored.
func (s *Series[T]) bounds(values iter.Seq[T]) (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for v := range values {
		i, exists := s.index[v]
		if !exists {
			continue
		}
		if lo < 0 || i < lo {
			lo = i
		}
		if hi < 0 || i > hi {
			hi = i
		}
	}
	return lo, hi, lo >= 0
}

// Min returns the candidate with the lowest stored index.
func (s *Series[T]) Min(values iter.Seq[T]) (T, bool) {
	lo, _, ok := s.bounds(values)
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[lo], true
}

// Max returns the candidate with the highest stored index.
func (s *Series[T]) Max(values iter.Seq[T]) (T, bool) {
	_, hi, ok := s.bounds(values)
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[hi], true
}

// Offset returns the value n positions after v (before, if n is negative).
func (s *Series[T]) Offset(v T, n int) (T, bool) {
	i, ok := s.index[v]
	if !ok {
		var zero T
		return zero, false
	}
	return s.At(i + n)
}

// CollapsedOffset treats values as one contiguous block and returns the value
// n positions beyond the block's outer edge in the direction of n's sign.
func (s *Series[T]) CollapsedOffset(values iter.Seq[T], n int) (T, bool) {
	var zero T
	if n == 0 {
		return zero, false
	}
	lo, hi, ok := s.bounds(values)
	if !ok {
		return zero, false
	}
	if n > 0 {
		return s.At(hi + n)
	}
	return s.At(lo + n)
}
