package Trees

import "golang.org/x/exp/constraints"

// RBTree is a BSTree that colors every node RED or BLACK and maintains the
// red-black properties: the root and nilPtr are BLACK, a RED node has no
// RED child, and every path from a node down to nilPtr crosses the same
// number of BLACK nodes. Those bound the height by 2*log2(n+1), so D is
// O(log n) always. Compared to AVLTree it rebalances with fewer rotations
// at the cost of a slightly deeper tree.
// RBTree shouldn't be created directly using struct literal.
type RBTree[K constraints.Ordered, V any] struct {
	base[K, V]
}

// MakeRBT returns an empty RBTree. The sentinel doubles as the BLACK NIL
// leaf of the classic formulation.
func MakeRBT[K constraints.Ordered, V any]() *RBTree[K, V] {
	return &RBTree[K, V]{makeBase[K, V]()}
}

// Put [OrderedMap.Put]
// A new node is attached RED, which can only break the no-double-RED
// property; putFix restores it walking toward the root.
// Time: O(D); Space: O(1)
func (u *RBTree[K, V]) Put(k K, v V) error {
	if incomparable(k) {
		return &InvalidKeyError{}
	}
	n, created := u.attach(k, v)
	if !created {
		n.v = v
		return nil
	}
	n.c = red
	u.putFix(n)
	return nil
}

// putFix repairs a double-RED violation at x. While x's parent is RED it
// branches on the color of x's uncle: a RED uncle is recolored and the
// violation pushed to the grandparent; a BLACK uncle takes one or two
// rotations depending on whether x is an inner or outer grandchild, and
// terminates the walk.
func (u *RBTree[K, V]) putFix(x *node[K, V]) {
	for x.p.c == red {
		g := x.p.p
		if x.p == g.l {
			if y := g.r; y.c == red {
				x.p.c = black
				y.c = black
				g.c = red
				x = g
			} else {
				if x == x.p.r {
					x = x.p
					u.rotateLeft(x)
				}
				x.p.c = black
				g.c = red
				u.rotateRight(g)
			}
		} else {
			if y := g.l; y.c == red {
				x.p.c = black
				y.c = black
				g.c = red
				x = g
			} else {
				if x == x.p.l {
					x = x.p
					u.rotateRight(x)
				}
				x.p.c = black
				g.c = red
				u.rotateLeft(g)
			}
		}
	}
	u.root.c = black
}

// Take [OrderedMap.Take]
// Splices out either the node itself or its in-order successor moved into
// its place. If the spliced node was BLACK its position carries a
// double-BLACK deficiency that takeFix repairs.
// Time: O(D); Space: O(1)
func (u *RBTree[K, V]) Take(k K) (V, error) {
	if incomparable(k) {
		return *new(V), &InvalidKeyError{}
	}
	z := u.search(k)
	if z == u.nilPtr {
		return *new(V), &KeyNotFoundError{}
	}
	val := z.v
	y := z
	spliced := y.c
	var x *node[K, V]
	if z.l == u.nilPtr {
		x = z.r
		u.transplant(z, z.r)
	} else if z.r == u.nilPtr {
		x = z.l
		u.transplant(z, z.l)
	} else {
		y = u.min(z.r)
		spliced = y.c
		x = y.r
		if y.p == z {
			x.p = y //x may be nilPtr, takeFix still needs its p link
		} else {
			u.transplant(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.c = z.c
	}
	u.sz--
	if spliced == black {
		u.takeFix(x)
	}
	return val, nil
}

// takeFix repairs the double-BLACK deficiency sitting on x. Case analysis
// on x's sibling: a RED sibling is rotated into a BLACK-sibling case; a
// BLACK sibling with BLACK children is recolored RED, pushing the
// deficiency to the parent; a BLACK sibling with a RED child absorbs the
// deficiency with one or two rotations and ends the walk. A RED x (or the
// root) absorbs the deficiency by recoloring.
func (u *RBTree[K, V]) takeFix(x *node[K, V]) {
	for x != u.root && x.c == black {
		if x == x.p.l {
			w := x.p.r
			if w.c == red {
				w.c = black
				x.p.c = red
				u.rotateLeft(x.p)
				w = x.p.r
			}
			if w.l.c == black && w.r.c == black {
				w.c = red
				x = x.p
			} else {
				if w.r.c == black {
					w.l.c = black
					w.c = red
					u.rotateRight(w)
					w = x.p.r
				}
				w.c = x.p.c
				x.p.c = black
				w.r.c = black
				u.rotateLeft(x.p)
				x = u.root
			}
		} else {
			w := x.p.l
			if w.c == red {
				w.c = black
				x.p.c = red
				u.rotateRight(x.p)
				w = x.p.l
			}
			if w.r.c == black && w.l.c == black {
				w.c = red
				x = x.p
			} else {
				if w.l.c == black {
					w.r.c = black
					w.c = red
					u.rotateLeft(w)
					w = x.p.l
				}
				w.c = x.p.c
				x.p.c = black
				w.l.c = black
				u.rotateRight(x.p)
				x = u.root
			}
		}
	}
	x.c = black
}

// Corrupt [OrderedMap.Corrupt]
// Checks the three color properties over the full tree on top of the
// shared structure checks.
func (u *RBTree[K, V]) Corrupt() bool {
	if u.badStructure() {
		return true
	}
	if u.root.c == red {
		return true
	}
	_, ok := u.blackHeight(u.root)
	return !ok
}

// blackHeight returns the BLACK node count of every path from n down to
// nilPtr and whether it is the same for all of them with no RED node
// having a RED child.
func (u *RBTree[K, V]) blackHeight(n *node[K, V]) (int, bool) {
	if n == u.nilPtr {
		return 1, true
	}
	if n.c == red && (n.l.c == red || n.r.c == red) {
		return 0, false
	}
	lh, lok := u.blackHeight(n.l)
	rh, rok := u.blackHeight(n.r)
	if !lok || !rok || lh != rh {
		return 0, false
	}
	if n.c == black {
		lh++
	}
	return lh, true
}
