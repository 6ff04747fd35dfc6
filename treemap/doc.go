// Package treemap implements a mutable ordered map on top of an
// unbalanced binary search tree. Keys are ordered by a compare
// function supplied when the map is created; the key type itself
// need not be ordered.
//
// The tree is never rebalanced. Inserting keys in sorted order
// produces a tree as deep as the map is long, and every operation on
// such a map costs time proportional to its length.
//
// A note about value equality. ContainsValue and Equal use the
// value's Equal(other V) bool method when it implements Equaler.
// Other values are compared deeply with go-cmp, unexported fields
// included. An Equal option replaces both.
//
// A Map is not safe for concurrent use.
package treemap
