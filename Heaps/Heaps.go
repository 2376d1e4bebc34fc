package Heaps

import "golang.org/x/exp/constraints"

// Heap is a priority container: Poll always removes the extreme element
// under the heap's configured order. Equal priorities are returned in
// arbitrary order; there is no stability guarantee.
type Heap[T any] interface {
	//Offer inserts v.
	Offer(v T)
	//Poll removes and returns the top element. Fails with EmptyHeapError
	//on an empty heap.
	Poll() (T, error)
	//Peek returns the top element without removing it. Fails with
	//EmptyHeapError on an empty heap.
	Peek() (T, error)
	//Size of the heap.
	Size() uint
	Empty() bool
}

type EmptyHeapError struct {
}

func (e *EmptyHeapError) Error() string {
	return "Heap is empty: cannot Poll or Peek."
}

// Entry pairs an explicit priority with an arbitrary payload for use with
// NewEntryHeap.
type Entry[P constraints.Ordered, V any] struct {
	Priority P
	Value    V
}
