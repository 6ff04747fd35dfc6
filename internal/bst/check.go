package bst

import (
	"github.com/cockroachdb/errors"
)

// Check walks the whole tree and verifies its structural invariants:
// keys are strictly ordered, every child points back at its parent,
// the root has no parent and the stored count matches the number of
// reachable nodes. The first violation found is returned.
func (t *Tree[K, V]) Check() error {
	if t.root == nil {
		if t.count != 0 {
			return errors.AssertionFailedf("empty tree has count %d", t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.AssertionFailedf("root %v has a parent", t.root.key)
	}
	var (
		seen int
		prev *node[K, V]
	)
	var visit func(n *node[K, V]) error
	visit = func(n *node[K, V]) error {
		for _, child := range []*node[K, V]{n.left, n.right} {
			if child != nil && child.parent != n {
				return errors.AssertionFailedf(
					"node %v is not linked back to parent %v", child.key, n.key)
			}
		}
		if n.left != nil {
			if err := visit(n.left); err != nil {
				return err
			}
		}
		if prev != nil && t.cmp(prev.key, n.key) >= 0 {
			return errors.AssertionFailedf(
				"key %v is not ordered after %v", n.key, prev.key)
		}
		prev = n
		seen++
		if n.right != nil {
			return visit(n.right)
		}
		return nil
	}
	if err := visit(t.root); err != nil {
		return errors.Wrap(err, "bst")
	}
	if seen != t.count {
		return errors.AssertionFailedf(
			"count is %d but %d nodes are reachable", t.count, seen)
	}
	return nil
}
