// Package idset provides an immutable, insertion-ordered set of identifiers.
package idset

import (
	"iter"
	"slices"
)

// Set is an immutable set of strings that remembers insertion order.
// The zero value is an empty set.
type Set struct {
	order []string
	index map[string]struct{}
}

// New builds a set from values. Repeated values keep their first position.
func New(values ...string) Set {
	return FromSeq(slices.Values(values))
}

// FromSeq builds a set from a sequence of values.
func FromSeq(values iter.Seq[string]) Set {
	s := Set{index: make(map[string]struct{})}
	for v := range values {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = struct{}{}
		s.order = append(s.order, v)
	}
	return s
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.order)
}

// Has reports whether v is a member.
func (s Set) Has(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Values returns the members in insertion order. The slice is a copy.
func (s Set) Values() []string {
	return slices.Clone(s.order)
}

// All iterates the members in insertion order.
func (s Set) All() iter.Seq[string] {
	return slices.Values(s.order)
}

// Equal reports whether both sets have the same members, ignoring order.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.order {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Filter returns the members for which keep returns true.
func (s Set) Filter(keep func(string) bool) Set {
	out := Set{index: make(map[string]struct{})}
	for _, v := range s.order {
		if keep(v) {
			out.index[v] = struct{}{}
			out.order = append(out.order, v)
		}
	}
	return out
}
