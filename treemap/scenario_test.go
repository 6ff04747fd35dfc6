package treemap

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveRootWithTwoChildren(t *testing.T) {
	m := NewOrdered[int, string]()
	for i, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		_, replaced := m.Put(k, string(rune('a'+i)))
		require.False(t, replaced)
	}
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, m.Keys())
	require.Equal(t, []string{"d", "b", "e", "a", "f", "c", "g"}, m.Values())

	v, ok := m.Remove(5)
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, 6, m.Length())
	require.Equal(t, []int{1, 3, 4, 7, 8, 9}, m.Keys())
	require.NoError(t, m.root.Check())
	require.Equal(t, "f", m.At(7))
	require.False(t, m.Contains(5))
}

func TestEmptyMap(t *testing.T) {
	m := New[int, *string](cmp.Compare[int])
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Length())

	v, ok := m.Find(42)
	require.False(t, ok)
	require.Nil(t, v)
	require.False(t, m.Contains(42))
	require.False(t, m.ContainsValue(nil))

	v, ok = m.Remove(42)
	require.False(t, ok)
	require.Nil(t, v)
	require.Equal(t, 0, m.Length())
	require.Empty(t, m.Keys())
	require.Empty(t, m.Values())
	require.Equal(t, "{ }", m.String())
}

func TestContainsValueNil(t *testing.T) {
	s := "x"
	m := NewOrdered[int, *string]()
	m.Put(1, &s)
	require.False(t, m.ContainsValue(nil))
	m.Put(2, nil)
	require.True(t, m.ContainsValue(nil))
	other := "x"
	require.True(t, m.ContainsValue(&other))
}

func TestEqualOption(t *testing.T) {
	m := NewOrdered[string, string](Equal(strings.EqualFold))
	m.Put("a", "Hello")
	require.True(t, m.ContainsValue("HELLO"))

	strict := NewOrdered[string, string]()
	strict.Put("a", "Hello")
	require.False(t, strict.ContainsValue("HELLO"))
	require.True(t, m.Equal(strict))
	require.False(t, NewOrdered[string, string]().Equal(strict))
}

type caseless string

func (c caseless) Compare(other caseless) int {
	return strings.Compare(strings.ToLower(string(c)), strings.ToLower(string(other)))
}

func TestComparatorDefinesIdentity(t *testing.T) {
	m := New[caseless, int](Compare[caseless]())
	m.Put("Root", 1)
	m.Put("apple", 2)
	m.Put("zebra", 3)

	prev, replaced := m.Put("ROOT", 10)
	require.True(t, replaced)
	require.Equal(t, 1, prev)
	require.Equal(t, 3, m.Length())

	e, ok := m.EntryAt("root")
	require.True(t, ok)
	require.Equal(t, caseless("Root"), e.Key())
	require.Equal(t, 10, e.Value())

	// The root is removed through the comparator, not by identity.
	v, ok := m.Remove("rOOt")
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Equal(t, []caseless{"apple", "zebra"}, m.Keys())
	require.NoError(t, m.root.Check())
}

func TestDegenerateInsertionOrder(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 1000; i > 0; i-- {
		m.Put(i, -i)
	}
	require.Equal(t, 1000, m.root.Height())
	require.Equal(t, 1000, m.Length())
	for i := 1; i <= 1000; i++ {
		require.Equal(t, -i, m.At(i))
	}
	for i := 1; i <= 1000; i += 3 {
		v, ok := m.Remove(i)
		require.True(t, ok)
		require.Equal(t, -i, v)
	}
	require.NoError(t, m.root.Check())
	require.Equal(t, 666, m.Length())
}

func TestClear(t *testing.T) {
	m := From(cmp.Compare[string], map[string]int{"a": 1, "b": 2})
	require.Equal(t, "{ [a 1] [b 2] }", m.String())
	m.Clear()
	require.True(t, m.IsEmpty())
	m.Put("c", 3)
	require.Equal(t, []Entry[string, int]{EntryNew("c", 3)}, m.Entries())
}

func TestNilCompare(t *testing.T) {
	require.Panics(t, func() {
		New[int, int](nil)
	})
}

type point struct{ x, y int }

type route struct {
	name  string
	stops []point
}

type release struct {
	major, minor int
	label        string
}

// Equal ignores the label.
func (r release) Equal(other release) bool {
	return r.major == other.major && r.minor == other.minor
}

func TestValueEquality(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*Map[int, any], *Map[int, any])
		present any
		absent  any
	}{
		{
			name: "struct with unexported fields",
			build: func() (*Map[int, any], *Map[int, any]) {
				return valueMaps(point{1, 2}, point{1, 2})
			},
			present: point{1, 2},
			absent:  point{2, 1},
		},
		{
			name: "nested slice in struct",
			build: func() (*Map[int, any], *Map[int, any]) {
				return valueMaps(
					route{name: "a", stops: []point{{0, 0}, {1, 1}}},
					route{name: "a", stops: []point{{0, 0}, {1, 1}}},
				)
			},
			present: route{name: "a", stops: []point{{0, 0}, {1, 1}}},
			absent:  route{name: "a", stops: []point{{0, 0}}},
		},
		{
			name: "slice",
			build: func() (*Map[int, any], *Map[int, any]) {
				return valueMaps([]int{1, 2, 3}, []int{1, 2, 3})
			},
			present: []int{1, 2, 3},
			absent:  []int{3, 2, 1},
		},
		{
			name: "pointer",
			build: func() (*Map[int, any], *Map[int, any]) {
				return valueMaps(&point{3, 4}, &point{3, 4})
			},
			present: &point{3, 4},
			absent:  &point{4, 3},
		},
		{
			name: "Equal method",
			build: func() (*Map[int, any], *Map[int, any]) {
				return valueMaps(
					release{major: 1, minor: 2, label: "rc1"},
					release{major: 1, minor: 2, label: "final"},
				)
			},
			present: release{major: 1, minor: 2, label: "other"},
			absent:  release{major: 1, minor: 3, label: "rc1"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.build()
			require.True(t, a.ContainsValue(tc.present))
			require.False(t, a.ContainsValue(tc.absent))
			require.True(t, a.Equal(b))
			require.True(t, b.Equal(a))
			b.Put(1, tc.absent)
			require.False(t, a.Equal(b))
		})
	}
}

func valueMaps(v1, v2 any) (*Map[int, any], *Map[int, any]) {
	a, b := NewOrdered[int, any](), NewOrdered[int, any]()
	a.Put(1, v1)
	b.Put(1, v2)
	return a, b
}

func TestStructValues(t *testing.T) {
	m := NewOrdered[int, point]()
	m.Put(1, point{1, 2})
	m.Put(2, point{3, 4})
	require.True(t, m.ContainsValue(point{1, 2}))
	require.False(t, m.ContainsValue(point{2, 1}))

	other := NewOrdered[int, point]()
	other.Put(2, point{3, 4})
	other.Put(1, point{1, 2})
	require.True(t, m.Equal(other))
	other.Put(2, point{4, 3})
	require.False(t, m.Equal(other))

	versions := NewOrdered[string, release]()
	versions.Put("stable", release{major: 1, minor: 2, label: "final"})
	require.True(t, versions.ContainsValue(release{major: 1, minor: 2}))
}
