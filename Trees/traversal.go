package Trees

import (
	"github.com/go-dsa/collections/Queues"
	"golang.org/x/exp/constraints"
)

// frame for the lazy post-order iterator: stage 0 hasn't descended left
// yet, 1 hasn't descended right, 2 is ready to be yielded.
type frame[K constraints.Ordered, V any] struct {
	n     *node[K, V]
	stage byte
}

// Traverse [OrderedMap.Traverse]
// The returned closure holds its own stack (or queue for BreadthOrder), so
// independent iterations don't interfere.
// Time: f(): amortized O(1) per call; Space: O(D), O(n) for BreadthOrder.
func (u *base[K, V]) Traverse(o Order) func() (K, V, bool) {
	switch o {
	case PreOrder:
		var st []*node[K, V]
		if u.root != u.nilPtr {
			st = append(st, u.root)
		}
		return func() (k K, v V, ok bool) {
			if len(st) == 0 {
				return
			}
			n := st[len(st)-1]
			st = st[:len(st)-1]
			if n.r != u.nilPtr {
				st = append(st, n.r)
			}
			if n.l != u.nilPtr {
				st = append(st, n.l)
			}
			return n.k, n.v, true
		}
	case PostOrder:
		var st []frame[K, V]
		if u.root != u.nilPtr {
			st = append(st, frame[K, V]{u.root, 0})
		}
		return func() (k K, v V, ok bool) {
			for len(st) > 0 {
				top := &st[len(st)-1]
				switch top.stage {
				case 0:
					top.stage = 1
					if top.n.l != u.nilPtr {
						st = append(st, frame[K, V]{top.n.l, 0})
					}
				case 1:
					top.stage = 2
					if top.n.r != u.nilPtr {
						st = append(st, frame[K, V]{top.n.r, 0})
					}
				default:
					n := top.n
					st = st[:len(st)-1]
					return n.k, n.v, true
				}
			}
			return
		}
	case BreadthOrder:
		q := Queues.MakeArrayQueue[*node[K, V]](u.sz/2 + 1)
		if u.root != u.nilPtr {
			q.Push(u.root)
		}
		return func() (k K, v V, ok bool) {
			n, e := q.Pop()
			if e != nil {
				return
			}
			if n.l != u.nilPtr {
				q.Push(n.l)
			}
			if n.r != u.nilPtr {
				q.Push(n.r)
			}
			return n.k, n.v, true
		}
	default: //InOrder
		var st []*node[K, V]
		for cur := u.root; cur != u.nilPtr; cur = cur.l {
			st = append(st, cur)
		}
		return func() (k K, v V, ok bool) {
			if len(st) == 0 {
				return
			}
			n := st[len(st)-1]
			st = st[:len(st)-1]
			for cur := n.r; cur != u.nilPtr; cur = cur.l {
				st = append(st, cur)
			}
			return n.k, n.v, true
		}
	}
}
