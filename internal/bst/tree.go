// Package bst implements a mutable, unbalanced binary search tree
// ordered by a caller supplied comparator. No rebalancing is ever
// performed so insertion order determines the shape of the tree.
package bst

import (
	"github.com/cockroachdb/errors"
)

// ErrNilCompare is raised when a tree is created without a comparator.
var ErrNilCompare = errors.New("bst: a compare function is required")

type compareFunc[K any] func(k1, k2 K) int

type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]

	// parent is only followed when relinking during removal.
	parent *node[K, V]
}

func (n *node[K, V]) setLeft(child *node[K, V]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

func (n *node[K, V]) setRight(child *node[K, V]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Tree is a binary search tree of key/value pairs. The zero value is
// not usable, trees are created with New. A Tree is not safe for
// concurrent use.
type Tree[K, V any] struct {
	root  *node[K, V]
	count int
	cmp   compareFunc[K]
}

// New returns an empty tree ordered by cmp. cmp must return a
// negative number, zero or a positive number when k1 is less than,
// equal to or greater than k2, and it must define a consistent total
// order over every key ever inserted.
func New[K, V any](cmp func(k1, k2 K) int) *Tree[K, V] {
	if cmp == nil {
		panic(ErrNilCompare)
	}
	return &Tree[K, V]{cmp: cmp}
}

// Length returns the number of entries in the tree.
func (t *Tree[K, V]) Length() int {
	return t.count
}

// Find returns the value stored under key and whether it was found.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	n := t.search(t.root, key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// FindEntry is like Find but also returns the key as stored in the
// tree, which may differ from key when the comparator treats distinct
// values as equal.
func (t *Tree[K, V]) FindEntry(key K) (K, V, bool) {
	if t.root != nil {
		if n := t.search(t.root, key); n != nil {
			return n.key, n.value, true
		}
	}
	var (
		zk K
		zv V
	)
	return zk, zv, false
}

// Contains tests if key is stored in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.root != nil && t.search(t.root, key) != nil
}

func (t *Tree[K, V]) search(n *node[K, V], key K) *node[K, V] {
	c := t.cmp(key, n.key)
	switch {
	case c == 0:
		return n
	case c < 0:
		if n.left == nil {
			return nil
		}
		return t.search(n.left, key)
	default:
		if n.right == nil {
			return nil
		}
		return t.search(n.right, key)
	}
}

// Insert stores value under key. If the key was already present its
// value is overwritten in place and the previous value is returned
// with replaced set to true.
func (t *Tree[K, V]) Insert(key K, value V) (old V, replaced bool) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.count = 1
		return old, false
	}
	return t.insert(t.root, key, value)
}

func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) (V, bool) {
	c := t.cmp(key, n.key)
	switch {
	case c == 0:
		old := n.value
		n.value = value
		return old, true
	case c < 0:
		if n.left == nil {
			n.setLeft(&node[K, V]{key: key, value: value})
			t.count++
			var zero V
			return zero, false
		}
		return t.insert(n.left, key, value)
	default:
		if n.right == nil {
			n.setRight(&node[K, V]{key: key, value: value})
			t.count++
			var zero V
			return zero, false
		}
		return t.insert(n.right, key, value)
	}
}

// Delete removes key from the tree and returns the value it held.
// removed is false if no entry compared equal to key.
func (t *Tree[K, V]) Delete(key K) (old V, removed bool) {
	if t.root == nil {
		return old, false
	}
	return t.delete(t.root, key)
}

func (t *Tree[K, V]) delete(n *node[K, V], key K) (V, bool) {
	c := t.cmp(key, n.key)
	switch {
	case c == 0:
		value := n.value
		t.unlink(n)
		return value, true
	case c < 0:
		if n.left == nil {
			var zero V
			return zero, false
		}
		return t.delete(n.left, key)
	default:
		if n.right == nil {
			var zero V
			return zero, false
		}
		return t.delete(n.right, key)
	}
}

// unlink detaches n from the tree, promoting a child or the in-order
// successor into its place.
func (t *Tree[K, V]) unlink(n *node[K, V]) {
	switch {
	case n.isLeaf():
		t.replace(n, nil)
	case n.right == nil:
		t.replace(n, n.left)
	case n.right.left == nil:
		succ := n.right
		succ.setLeft(n.left)
		t.replace(n, succ)
	default:
		parent, succ := n.right, n.right.left
		for succ.left != nil {
			parent, succ = succ, succ.left
		}
		parent.setLeft(succ.right)
		succ.setLeft(n.left)
		succ.setRight(n.right)
		t.replace(n, succ)
	}
	n.left, n.right, n.parent = nil, nil, nil
}

// replace puts y in x's position under x's parent, or at the root,
// and accounts for the removal of x. y may be nil.
func (t *Tree[K, V]) replace(x, y *node[K, V]) {
	p := x.parent
	switch {
	case p == nil:
		t.root = y
		if y != nil {
			y.parent = nil
		}
	case p.left == x:
		p.setLeft(y)
	default:
		p.setRight(y)
	}
	t.count--
}

// Clear removes every entry from the tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

// Walk visits every entry in ascending key order until fn returns
// false.
func (t *Tree[K, V]) Walk(fn func(key K, value V) bool) {
	walk(t.root, fn)
}

func walk[K, V any](n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, fn) &&
		fn(n.key, n.value) &&
		walk(n.right, fn)
}

// Keys returns the keys of the tree in ascending order.
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, t.count)
	t.Walk(func(key K, _ V) bool {
		out = append(out, key)
		return true
	})
	return out
}

// Values returns the values of the tree ordered by their keys.
func (t *Tree[K, V]) Values() []V {
	out := make([]V, 0, t.count)
	t.Walk(func(_ K, value V) bool {
		out = append(out, value)
		return true
	})
	return out
}

// Height returns the number of nodes on the longest path from the
// root to a leaf.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
