// Package treeset implements a mutable ordered Set on top of treemap
package treeset // import "jsouthworth.net/go/bstmap/treeset"

import (
	"cmp"
	"fmt"
	"strings"

	"jsouthworth.net/go/bstmap/treemap"
)

// Set is a mutable set whose elements are kept in the order defined
// by a compare function.
type Set[T any] struct {
	backingMap *treemap.Map[T, struct{}]
}

// New returns a set ordered by compare containing the supplied
// elements. New panics if compare is nil.
func New[T any](compare func(e1, e2 T) int, elems ...T) *Set[T] {
	s := &Set[T]{
		backingMap: treemap.New[T, struct{}](compare),
	}
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

// NewOrdered returns a set of naturally ordered elements containing
// the supplied elements.
func NewOrdered[T cmp.Ordered](elems ...T) *Set[T] {
	return New(cmp.Compare[T], elems...)
}

// Add adds an element to the set. It reports whether the element was
// not already present.
func (s *Set[T]) Add(elem T) bool {
	_, replaced := s.backingMap.Put(elem, struct{}{})
	return !replaced
}

// Contains returns true if the element is in the set, false otherwise.
func (s *Set[T]) Contains(elem T) bool {
	return s.backingMap.Contains(elem)
}

// Find will return the element as stored in the set and whether it
// exists in the set.
func (s *Set[T]) Find(elem T) (T, bool) {
	e, ok := s.backingMap.EntryAt(elem)
	return e.Key(), ok
}

// Remove removes an element from the set. It reports whether the
// element was present.
func (s *Set[T]) Remove(elem T) bool {
	_, ok := s.backingMap.Remove(elem)
	return ok
}

// Range calls do on each element of the set in ascending order until
// do returns false.
func (s *Set[T]) Range(do func(elem T) bool) {
	s.backingMap.Range(func(elem T, _ struct{}) bool {
		return do(elem)
	})
}

// Elems returns the elements of the set in ascending order.
func (s *Set[T]) Elems() []T {
	return s.backingMap.Keys()
}

// Length returns the number of elements in the set.
func (s *Set[T]) Length() int {
	return s.backingMap.Length()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.backingMap.IsEmpty()
}

// String returns a string serialization of the set.
func (s *Set[T]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	s.Range(func(elem T) bool {
		fmt.Fprintf(&b, "%v ", elem)
		return true
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// Equal tests if two sets contain the same elements.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if other == nil {
		return false
	}
	return s.backingMap.Equal(other.backingMap)
}
