package Trees

import "golang.org/x/exp/constraints"

// AVLTree is a BSTree that stores the height of every subtree and restores
// |height(l) - height(r)| <= 1 at every node with rotations after each
// Put and Take. The height stored on nilPtr is 0, a leaf has height 1, and
// the balance factor of a node is height(l) - height(r).
// Worst case height is about 1.44*log2(n), so D is O(log n) always.
// AVLTree shouldn't be created directly using struct literal.
type AVLTree[K constraints.Ordered, V any] struct {
	base[K, V]
}

// MakeAVL returns an empty AVLTree.
func MakeAVL[K constraints.Ordered, V any]() *AVLTree[K, V] {
	return &AVLTree[K, V]{makeBase[K, V]()}
}

func (u *AVLTree[K, V]) update(n *node[K, V]) {
	n.h = 1 + max(n.l.h, n.r.h)
}

func (u *AVLTree[K, V]) balance(n *node[K, V]) int {
	return n.l.h - n.r.h
}

// rotL is rotateLeft plus the height bookkeeping for the rotated pair;
// all other heights are untouched by a rotation.
func (u *AVLTree[K, V]) rotL(x *node[K, V]) *node[K, V] {
	y := u.rotateLeft(x)
	u.update(x)
	u.update(y)
	return y
}

func (u *AVLTree[K, V]) rotR(x *node[K, V]) *node[K, V] {
	y := u.rotateRight(x)
	u.update(x)
	u.update(y)
	return y
}

// rebalance applies one of the four rotation cases to n if its balance
// factor is outside [-1, 1] and returns the root of the rotated subtree.
// Left-Left and Right-Right take a single rotation; Left-Right and
// Right-Left first rotate the child to reduce to the single case.
func (u *AVLTree[K, V]) rebalance(n *node[K, V]) *node[K, V] {
	if b := u.balance(n); b > 1 {
		if u.balance(n.l) < 0 {
			u.rotL(n.l)
		}
		return u.rotR(n)
	} else if b < -1 {
		if u.balance(n.r) > 0 {
			u.rotR(n.r)
		}
		return u.rotL(n)
	}
	return n
}

// Put [OrderedMap.Put]
// After attaching a leaf, walks back toward the root recomputing heights;
// at most one rebalance is needed and the walk stops early once a
// subtree's height comes out unchanged.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V]) Put(k K, v V) error {
	if incomparable(k) {
		return &InvalidKeyError{}
	}
	n, created := u.attach(k, v)
	if !created {
		n.v = v
		return nil
	}
	for m := n.p; m != u.nilPtr; m = m.p {
		oh := m.h
		u.update(m)
		m = u.rebalance(m)
		if m.h == oh {
			break
		}
	}
	return nil
}

// Take [OrderedMap.Take]
// Unlike insertion, a removal can unbalance every ancestor, so the walk
// continues rebalancing all the way up to the root.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V]) Take(k K) (V, error) {
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
	par := n.p
	u.transplant(n, c)
	u.sz--
	for m := par; m != u.nilPtr; m = m.p {
		u.update(m)
		m = u.rebalance(m)
	}
	return val, nil
}

// Corrupt [OrderedMap.Corrupt]
// Checks the stored heights and the balance factor over the full tree on
// top of the shared structure checks.
func (u *AVLTree[K, V]) Corrupt() bool {
	return u.badStructure() || u.badHeight(u.root)
}

func (u *AVLTree[K, V]) badHeight(n *node[K, V]) bool {
	if n == u.nilPtr {
		return false
	}
	if n.h != 1+max(n.l.h, n.r.h) {
		return true
	}
	if b := n.l.h - n.r.h; b > 1 || b < -1 {
		return true
	}
	return u.badHeight(n.l) || u.badHeight(n.r)
}
