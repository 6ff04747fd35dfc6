package treemap

import "cmp"

// Comparer may be implemented by key types that know how to order
// themselves. Compare must return a negative number, zero or a
// positive number when the receiver is less than, equal to or greater
// than other.
type Comparer[K any] interface {
	Compare(other K) int
}

// Compare returns a compare function for key types implementing
// Comparer.
func Compare[K Comparer[K]]() func(k1, k2 K) int {
	return func(k1, k2 K) int {
		return k1.Compare(k2)
	}
}

func defaultCompare[K cmp.Ordered](k1, k2 K) int {
	return cmp.Compare(k1, k2)
}
