// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fcq

// Queue is the combined producer-consumer interface for an unbounded
// FIFO queue.
//
// Enqueue never fails. Dequeue reports an empty queue through its boolean
// result rather than an error.
//
// The interface intentionally excludes length: only the combiner lock
// holder may look at the backing queue.
//
// Example:
//
//	var q fcq.Queue[int] = fcq.NewFC[int]()
//
//	v := 42
//	q.Enqueue(&v)
//
//	if elem, ok := q.Dequeue(); ok {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs through
// the call chain. The queue stores a copy of the pointed-to value, so the
// original can be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the tail of the queue.
	// Safe for any number of concurrent producers.
	Enqueue(elem *T)
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and returns the head of the queue.
	// Returns (zero-value, false) if the queue is empty.
	// Safe for any number of concurrent consumers.
	Dequeue() (T, bool)
}

// Sequential is the unsynchronized FIFO a combining queue delegates to.
//
// Implementations need no internal locking: methods are only ever called
// by the goroutine holding the combiner lock, and lock handoff orders all
// accesses. Both methods should be O(1).
type Sequential[T any] interface {
	// PushBack appends elem at the tail.
	PushBack(elem T)
	// PopFront removes the head element.
	// Returns (zero-value, false) if empty.
	PopFront() (T, bool)
}
