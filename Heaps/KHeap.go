package Heaps

import "golang.org/x/exp/constraints"

// KHeap is an array backed heap with branching factor k: the children of
// the entry at index i sit at indices k*i+1 .. k*i+k and the parent at
// (i-1)/k. It is ordered by a min comparator, cmp(a, b) < 0 meaning a
// belongs closer to the top; negate the comparator for a max heap. Larger
// k trades cheaper sift up (shallower tree) for more comparisons per sift
// down level; 2 gives the classic binary heap and around 4 is usually the
// sweet spot.
// KHeap shouldn't be created directly using struct literal.
type KHeap[T any] struct {
	heap []T
	k    uint
	cmp  func(a, b T) int
}

// New returns an empty KHeap with branching factor k, clamped to at
// least 2.
func New[T any](k uint, cmp func(a, b T) int) *KHeap[T] {
	return &KHeap[T]{nil, max(k, 2), cmp}
}

// From heapifies data in place bottom-up, sifting down every internal node
// from the last one to the root, and takes ownership of the slice. This is
// O(n), faster than offering the elements one at a time; prefer it for
// bulk loading.
func From[T any](data []T, k uint, cmp func(a, b T) int) *KHeap[T] {
	u := New(k, cmp)
	u.heap = data
	if n := uint(len(data)); n > 1 {
		for i := int((n - 2) / u.k); i >= 0; i-- {
			u.siftDown(uint(i))
		}
	}
	return u
}

// FromTopDown heapifies data in place top-down, sifting up each element as
// if offered one at a time, and takes ownership of the slice. O(n*log n);
// From produces an equally valid heap in O(n).
func FromTopDown[T any](data []T, k uint, cmp func(a, b T) int) *KHeap[T] {
	u := New(k, cmp)
	u.heap = data
	for i := uint(1); i < uint(len(data)); i++ {
		u.siftUp(i)
	}
	return u
}

// Min returns an empty k-ary min heap over an Ordered element type.
func Min[T constraints.Ordered](k uint) *KHeap[T] {
	return New(k, func(a, b T) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	})
}

// Max returns an empty k-ary max heap over an Ordered element type.
func Max[T constraints.Ordered](k uint) *KHeap[T] {
	return New(k, func(a, b T) int {
		if b < a {
			return -1
		} else if b > a {
			return 1
		}
		return 0
	})
}

// NewEntryHeap returns an empty k-ary heap of (priority, value) pairs
// ordered by ascending priority.
func NewEntryHeap[P constraints.Ordered, V any](k uint) *KHeap[Entry[P, V]] {
	return New(k, func(a, b Entry[P, V]) int {
		if a.Priority < b.Priority {
			return -1
		} else if a.Priority > b.Priority {
			return 1
		}
		return 0
	})
}

// Size [Heap.Size]
// Time: O(1); Space: O(1)
func (u *KHeap[T]) Size() uint {
	return uint(len(u.heap))
}

func (u *KHeap[T]) Empty() bool {
	return len(u.heap) == 0
}

// Offer [Heap.Offer]
// Appends v and sifts it up toward the root until heap order holds.
// Time: O(log_k n); Space: O(1) amortized
func (u *KHeap[T]) Offer(v T) {
	u.heap = append(u.heap, v)
	u.siftUp(uint(len(u.heap)) - 1)
}

// Poll [Heap.Poll]
// Swaps the root with the last element, shrinks by one, and sifts the new
// root down until heap order holds.
// Time: O(k*log_k n); Space: O(1)
func (u *KHeap[T]) Poll() (T, error) {
	if len(u.heap) == 0 {
		return *new(T), &EmptyHeapError{}
	}
	top := u.heap[0]
	last := len(u.heap) - 1
	u.heap[0] = u.heap[last]
	u.heap[last] = *new(T) //release the reference for GC
	u.heap = u.heap[:last]
	if last > 0 {
		u.siftDown(0)
	}
	return top, nil
}

// Peek [Heap.Peek]
// Time: O(1); Space: O(1)
func (u *KHeap[T]) Peek() (T, error) {
	if len(u.heap) == 0 {
		return *new(T), &EmptyHeapError{}
	}
	return u.heap[0], nil
}

// Clear empties the heap keeping the backing array.
func (u *KHeap[T]) Clear() {
	for i := range u.heap {
		u.heap[i] = *new(T)
	}
	u.heap = u.heap[:0]
}

// siftUp moves the element at i toward the root, swapping with its parent
// while it compares smaller, stopping at the root or when order holds.
func (u *KHeap[T]) siftUp(i uint) {
	for i > 0 {
		p := (i - 1) / u.k
		if u.cmp(u.heap[i], u.heap[p]) >= 0 {
			break
		}
		u.heap[i], u.heap[p] = u.heap[p], u.heap[i]
		i = p
	}
}

// siftDown moves the element at i toward the leaves, swapping with the
// smallest of its up to k children while one compares smaller, stopping at
// a leaf or when order holds.
func (u *KHeap[T]) siftDown(i uint) {
	n := uint(len(u.heap))
	for {
		chosen := i
		for c := i*u.k + 1; c <= i*u.k+u.k && c < n; c++ {
			if u.cmp(u.heap[c], u.heap[chosen]) < 0 {
				chosen = c
			}
		}
		if chosen == i {
			return
		}
		u.heap[i], u.heap[chosen] = u.heap[chosen], u.heap[i]
		i = chosen
	}
}
