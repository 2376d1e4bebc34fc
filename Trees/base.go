package Trees

import "golang.org/x/exp/constraints"

// base is the shared core composed into BSTree, AVLTree, and RBTree: the
// root, the element count, and a nilPtr sentinel used instead of nil.
// Variants embed base and supply only their own Put/Take rebalancing;
// everything else (search, splice, rotations, traversal) lives here.
// nilPtr is a node with l, r, p all pointing at itself, color BLACK, and
// h==0; root is nilPtr for an empty tree and root.p is always nilPtr.
type base[K constraints.Ordered, V any] struct {
	root, nilPtr *node[K, V]
	sz           uint
}

func makeBase[K constraints.Ordered, V any]() base[K, V] {
	z := new(node[K, V])
	z.p, z.l, z.r = z, z, z
	return base[K, V]{z, z, 0}
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[K, V]) Size() uint {
	return u.sz
}

// search descends from the root comparing keys.
// Time: O(D); Space: O(1)
func (u *base[K, V]) search(k K) *node[K, V] {
	cur := u.root
	for cur != u.nilPtr && k != cur.k {
		if k < cur.k {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return cur
}

// min of the subtree rooted at n. n mustn't be nilPtr.
func (u *base[K, V]) min(n *node[K, V]) *node[K, V] {
	for n.l != u.nilPtr {
		n = n.l
	}
	return n
}

// max of the subtree rooted at n. n mustn't be nilPtr.
func (u *base[K, V]) max(n *node[K, V]) *node[K, V] {
	for n.r != u.nilPtr {
		n = n.r
	}
	return n
}

// attach descends from the root and either finds the node already holding
// k or links a fresh leaf at the unique valid position. The second return
// value is true iff a node was created. Rebalancing is up to the caller.
// Time: O(D); Space: O(1)
func (u *base[K, V]) attach(k K, v V) (*node[K, V], bool) {
	p, cur := u.nilPtr, u.root
	for cur != u.nilPtr && k != cur.k {
		p = cur
		if k < cur.k {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if cur != u.nilPtr {
		return cur, false
	}
	n := &node[K, V]{k: k, v: v, p: p, l: u.nilPtr, r: u.nilPtr, h: 1}
	if p == u.nilPtr {
		u.root = n
	} else if k < p.k {
		p.l = n
	} else {
		p.r = n
	}
	u.sz++
	return n, true
}

// transplant replaces the subtree rooted at x with the one rooted at y in
// x's parent slot. y may be nilPtr; its p link is overwritten either way.
func (u *base[K, V]) transplant(x, y *node[K, V]) {
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.p = x.p
}

// rotateLeft performs a left rotation on x, making x.r the local root,
// and returns it. x.r mustn't be nilPtr. Heights are not touched; AVLTree
// recomputes them for the rotated pair.
// Time: O(1); Space: O(1)
func (u *base[K, V]) rotateLeft(x *node[K, V]) *node[K, V] {
	y := x.r
	x.r = y.l
	if y.l != u.nilPtr {
		y.l.p = x
	}
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
	return y
}

// rotateRight performs a right rotation on x, making x.l the local root,
// and returns it. x.l mustn't be nilPtr.
// Time: O(1); Space: O(1)
func (u *base[K, V]) rotateRight(x *node[K, V]) *node[K, V] {
	y := x.l
	x.l = y.r
	if y.r != u.nilPtr {
		y.r.p = x
	}
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.r {
		x.p.r = y
	} else {
		x.p.l = y
	}
	y.r = x
	x.p = y
	return y
}

// Get [OrderedMap.Get]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Get(k K) (V, error) {
	if incomparable(k) {
		return *new(V), &InvalidKeyError{}
	}
	if n := u.search(k); n != u.nilPtr {
		return n.v, nil
	}
	return *new(V), &KeyNotFoundError{}
}

// Has [OrderedMap.Has]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Has(k K) bool {
	return !incomparable(k) && u.search(k) != u.nilPtr
}

// Minimum [OrderedMap.Minimum]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Minimum() (K, V, error) {
	if u.root == u.nilPtr {
		return *new(K), *new(V), &EmptyTreeError{}
	}
	n := u.min(u.root)
	return n.k, n.v, nil
}

// Maximum [OrderedMap.Maximum]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Maximum() (K, V, error) {
	if u.root == u.nilPtr {
		return *new(K), *new(V), &EmptyTreeError{}
	}
	n := u.max(u.root)
	return n.k, n.v, nil
}

// Predecessor [OrderedMap.Predecessor]
// Descends into the left subtree when there is one, otherwise walks up
// through ancestors until one is reached via its right link.
// Time: O(D); Space: O(1)
func (u *base[K, V]) Predecessor(k K) (K, V, error) {
	if incomparable(k) {
		return *new(K), *new(V), &InvalidKeyError{}
	}
	n := u.search(k)
	if n == u.nilPtr {
		return *new(K), *new(V), &KeyNotFoundError{}
	}
	if n.l != u.nilPtr {
		m := u.max(n.l)
		return m.k, m.v, nil
	}
	for n.p != u.nilPtr {
		if n == n.p.r {
			return n.p.k, n.p.v, nil
		}
		n = n.p
	}
	return *new(K), *new(V), &NotFoundError{}
}

// Successor [OrderedMap.Successor]
// Mirror of Predecessor.
// Time: O(D); Space: O(1)
func (u *base[K, V]) Successor(k K) (K, V, error) {
	if incomparable(k) {
		return *new(K), *new(V), &InvalidKeyError{}
	}
	n := u.search(k)
	if n == u.nilPtr {
		return *new(K), *new(V), &KeyNotFoundError{}
	}
	if n.r != u.nilPtr {
		m := u.min(n.r)
		return m.k, m.v, nil
	}
	for n.p != u.nilPtr {
		if n == n.p.l {
			return n.p.k, n.p.v, nil
		}
		n = n.p
	}
	return *new(K), *new(V), &NotFoundError{}
}

// badStructure reports a violation of the properties every binary search
// tree here maintains: consistent parent links, strictly increasing
// in-order keys, and a size matching the reachable node count.
func (u *base[K, V]) badStructure() bool {
	if u.root != u.nilPtr && u.root.p != u.nilPtr {
		return true
	}
	if u.badLinks(u.root) {
		return true
	}
	next := u.Traverse(InOrder)
	count := uint(0)
	if prev, _, ok := next(); ok {
		count = 1
		for k, _, ok := next(); ok; k, _, ok = next() {
			if k <= prev {
				return true
			}
			prev = k
			count++
		}
	}
	return count != u.sz
}

func (u *base[K, V]) badLinks(n *node[K, V]) bool {
	if n == u.nilPtr {
		return false
	}
	if n.l != u.nilPtr && n.l.p != n {
		return true
	}
	if n.r != u.nilPtr && n.r.p != n {
		return true
	}
	return u.badLinks(n.l) || u.badLinks(n.r)
}
