package Queues

// Queue is a FIFO container. Pop and Peek report an empty queue with
// EmptyQueueError instead of a sentinel value.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
}

// ArrayQueue is a Queue over a contiguous backing array, so it additionally
// supports capacity management.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop or Peek."
}
