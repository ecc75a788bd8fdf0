package set

import (
	"fmt"
	"strconv"
	"strings"
)

// Set is a finite collection of distinct ints that remembers insertion order.
// The zero value is an empty set ready to use.
type Set struct {
	elements []int
	index    map[int]struct{}
}

// New returns a set holding elems with duplicates dropped; the first
// occurrence of each value fixes its position.
func New(elems ...int) *Set {
	s := &Set{}
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// NewStrict is like New but rejects input that repeats a value.
func NewStrict(elems []int) (*Set, error) {
	s := &Set{}
	for i, e := range elems {
		if s.Contains(e) {
			return nil, fmt.Errorf("NewStrict: value %d at position %d: %w", e, i, ErrDuplicateElement)
		}
		s.Add(e)
	}

	return s, nil
}

// Add appends e unless it is already present.
func (s *Set) Add(e int) {
	if s.Contains(e) {
		return
	}
	if s.index == nil {
		s.index = make(map[int]struct{})
	}
	s.index[e] = struct{}{}
	s.elements = append(s.elements, e)
}

// Remove deletes e if present; the relative order of the rest is kept.
func (s *Set) Remove(e int) {
	if !s.Contains(e) {
		return
	}
	delete(s.index, e)
	for i, v := range s.elements {
		if v == e {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return
		}
	}
}

// Contains reports whether e is a member of s.
func (s *Set) Contains(e int) bool {
	if s == nil || s.index == nil {
		return false
	}
	_, ok := s.index[e]

	return ok
}

// Len returns the cardinality of s.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.elements)
}

// IsEmpty reports whether s has no elements.
func (s *Set) IsEmpty() bool { return s.Len() == 0 }

// Elements returns a copy of the members in insertion order.
func (s *Set) Elements() []int {
	if s == nil {
		return []int{}
	}

	return append([]int{}, s.elements...)
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set { return New(s.Elements()...) }

// String renders s as "{1, 2, 3}" in insertion order.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range s.Elements() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(e))
	}
	sb.WriteByte('}')

	return sb.String()
}
