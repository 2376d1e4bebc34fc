package Trees

import "golang.org/x/exp/constraints"

// BSTree is the baseline unbalanced binary search tree. Put and Take keep
// the search order invariant and nothing else, so the height is O(log n)
// only on average; feeding it sorted keys degrades it to a linked list.
// Use AVLTree or RBTree when the insertion order can be adversarial.
// BSTree shouldn't be created directly using struct literal.
type BSTree[K constraints.Ordered, V any] struct {
	base[K, V]
}

// MakeBST returns an empty BSTree satisfying the nilPtr description in base.
func MakeBST[K constraints.Ordered, V any]() *BSTree[K, V] {
	return &BSTree[K, V]{makeBase[K, V]()}
}

// Put [OrderedMap.Put]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Put(k K, v V) error {
	if incomparable(k) {
		return &InvalidKeyError{}
	}
	if n, created := u.attach(k, v); !created {
		n.v = v
	}
	return nil
}

// Take [OrderedMap.Take]
// A node with two children swaps contents with its in-order successor
// (minimum of the right subtree), which has at most one child, reducing
// every removal to a single splice.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Take(k K) (V, error) {
	if incomparable(k) {
		return *new(V), &InvalidKeyError{}
	}
	n := u.search(k)
	if n == u.nilPtr {
		return *new(V), &KeyNotFoundError{}
	}
	val := n.v
	if n.l != u.nilPtr && n.r != u.nilPtr {
		s := u.min(n.r)
		n.k, n.v = s.k, s.v
		n = s
	}
	c := n.l
	if c == u.nilPtr {
		c = n.r
	}
	u.transplant(n, c)
	u.sz--
	return val, nil
}

// Corrupt [OrderedMap.Corrupt]
func (u *BSTree[K, V]) Corrupt() bool {
	return u.badStructure()
}
