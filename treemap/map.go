package treemap // import "jsouthworth.net/go/bstmap/treemap"

import (
	"cmp"
	"fmt"
	"strings"

	"jsouthworth.net/go/bstmap/internal/bst"
)

// Entry is a map entry. Each entry consists of a key and value.
type Entry[K, V any] struct {
	key   K
	value V
}

// EntryNew returns an Entry
func EntryNew[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

// Key returns the entry's key.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Value returns the entry's value.
func (e Entry[K, V]) Value() V {
	return e.value
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.key, e.value)
}

// Map is a mutable map ordered by its keys. Changes are made in
// place. The zero value is not usable, maps are created with New,
// NewOrdered or From.
type Map[K, V any] struct {
	root *bst.Tree[K, V]
	eq   eqFunc[V]
}

type mapOptions[V any] struct {
	equal eqFunc[V]
}

// Option is a type that allows changes to pluggable parts of the
// Map implementation.
type Option[V any] func(*mapOptions[V])

// Equal is an option to New that will allow one to specify a
// different equality operator for values instead of the default.
// The default uses the value's Equal method when it implements
// Equaler and otherwise compares values deeply, unexported fields
// included.
func Equal[V any](eq func(v1, v2 V) bool) Option[V] {
	return func(o *mapOptions[V]) {
		o.equal = eq
	}
}

// New returns a new empty map ordered by compare. compare must define
// a consistent total order over every key ever stored in the map and
// must not change for the lifetime of the map. New panics if compare
// is nil.
func New[K, V any](compare func(k1, k2 K) int, options ...Option[V]) *Map[K, V] {
	opts := mapOptions[V]{
		equal: defaultEqual[V],
	}
	for _, opt := range options {
		opt(&opts)
	}
	return &Map[K, V]{
		root: bst.New[K, V](compare),
		eq:   opts.equal,
	}
}

// NewOrdered returns a new empty map for keys with a natural order.
func NewOrdered[K cmp.Ordered, V any](options ...Option[V]) *Map[K, V] {
	return New[K, V](defaultCompare[K], options...)
}

// From converts a go native map to a Map ordered by compare.
func From[K comparable, V any](
	compare func(k1, k2 K) int,
	native map[K]V,
	options ...Option[V],
) *Map[K, V] {
	out := New[K, V](compare, options...)
	for key, val := range native {
		out.Put(key, val)
	}
	return out
}

// Length returns the number of entries in the map.
func (m *Map[K, V]) Length() int {
	return m.root.Length()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root.Length() == 0
}

// At returns the value associated with the key.
// If one is not found, the zero value is returned.
func (m *Map[K, V]) At(key K) V {
	v, _ := m.root.Find(key)
	return v
}

// EntryAt returns the entry (key, value pair) of the key and whether
// it was found. The returned key is the one stored in the map.
func (m *Map[K, V]) EntryAt(key K) (Entry[K, V], bool) {
	k, v, ok := m.root.FindEntry(key)
	if !ok {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{key: k, value: v}, true
}

// Find will return the value for a key if it exists in the map and
// whether the key exists in the map.
func (m *Map[K, V]) Find(key K) (value V, exists bool) {
	return m.root.Find(key)
}

// Contains will test if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.root.Contains(key)
}

// ContainsValue will test if any key in the map is associated with a
// value equal to value. It visits every entry.
func (m *Map[K, V]) ContainsValue(value V) bool {
	if m.IsEmpty() {
		return false
	}
	for _, v := range m.root.Values() {
		if m.eq(v, value) {
			return true
		}
	}
	return false
}

// Put associates a value with a key in the map. If the key was
// already present its previous value is returned and replaced is
// true; the length of the map is unchanged in that case.
func (m *Map[K, V]) Put(key K, value V) (previous V, replaced bool) {
	return m.root.Insert(key, value)
}

// Remove removes a key and associated value from the map. The removed
// value is returned, ok is false if the key was not in the map.
func (m *Map[K, V]) Remove(key K) (removed V, ok bool) {
	return m.root.Delete(key)
}

// Clear removes every entry from the map.
func (m *Map[K, V]) Clear() {
	m.root.Clear()
}

// Keys returns the keys of the map in ascending order.
func (m *Map[K, V]) Keys() []K {
	return m.root.Keys()
}

// Values returns the values of the map in the ascending order of
// their keys.
func (m *Map[K, V]) Values() []V {
	return m.root.Values()
}

// Entries returns the entries of the map in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.Length())
	m.Range(func(key K, value V) bool {
		out = append(out, Entry[K, V]{key: key, value: value})
		return true
	})
	return out
}

// Range calls do for every entry of the map in ascending key order,
// stopping early if do returns false. The map must not be modified
// from within do.
func (m *Map[K, V]) Range(do func(key K, value V) bool) {
	m.root.Walk(do)
}

// String returns a string representation of the map.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	m.Range(func(key K, value V) bool {
		fmt.Fprintf(&b, "%s ", Entry[K, V]{key: key, value: value})
		return true
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// Equal tests if two maps are Equal by comparing the entries of
// each. Keys are looked up in other with other's compare function and
// values are compared with m's equality operator.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if other == nil {
		return false
	}
	if m.Length() != other.Length() {
		return false
	}
	foundAll := true
	m.Range(func(key K, value V) bool {
		v, ok := other.Find(key)
		if !ok || !m.eq(value, v) {
			foundAll = false
			return false
		}
		return true
	})
	return foundAll
}
