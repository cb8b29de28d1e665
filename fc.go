// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fcq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/fcq/internal/deque"
)

// FC is an unbounded multi-producer multi-consumer FIFO queue based on
// flat combining.
//
// Each operation first tries to become the combiner. The combiner applies
// its own operation to a sequential queue, serves every request announced
// in the slots, and releases the lock. A goroutine that loses the race
// announces its request in a random slot and spins until either a
// combiner serves it or it wins the lock itself.
//
// Ordering: effects are linearizable, but requests served in one combine
// pass are applied in slot-index order, not in the order they were
// announced. Enqueues issued sequentially by one goroutine stay in order.
//
// Memory: one padded cell per slot plus the backing queue
type FC[T any] struct {
	_       pad
	lock    combinerLock
	_       padShort
	slots   slots[T]
	backing Sequential[T]
	backoff bool
	stats   stats
}

// NewFC creates a flat-combining queue with DefaultSlots announcement
// slots and a chunked backing queue.
func NewFC[T any]() *FC[T] {
	return newFC[T](DefaultSlots, deque.NewChunked[T](), false)
}

func newFC[T any](n int, backing Sequential[T], backoff bool) *FC[T] {
	if n < 1 {
		panic("fcq: slots must be >= 1")
	}
	if backing == nil {
		panic("fcq: backing queue must not be nil")
	}
	return &FC[T]{
		slots:   make(slots[T], n),
		backing: backing,
		backoff: backoff,
	}
}

// Enqueue appends a copy of *elem to the tail of the queue.
// It never fails and returns once the element is in the backing queue.
func (q *FC[T]) Enqueue(elem *T) {
	q.do(slotEnqueue, elem)
}

// Dequeue removes and returns the head of the queue.
// Returns (zero-value, false) if the queue is empty.
func (q *FC[T]) Dequeue() (T, bool) {
	return q.do(slotDequeue, nil)
}

// TryDequeue is Dequeue in the (T, error) convention of lfq queues.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *FC[T]) TryDequeue() (T, error) {
	elem, ok := q.do(slotDequeue, nil)
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// Slots returns the number of announcement slots.
func (q *FC[T]) Slots() int {
	return len(q.slots)
}

// do runs one operation to completion.
//
// The slot index is chosen once. While not waiting, a lost lock race is
// followed by an attempt to announce in that slot; once announced, every
// iteration first checks for a Result. The loop has no bound: progress
// depends on the current combiner finishing its pass.
func (q *FC[T]) do(kind uint64, elem *T) (T, bool) {
	idx := q.slots.pick()
	waiting := false
	sw := spin.Wait{}
	bo := iox.Backoff{}
	for {
		if waiting {
			if v, ok, served := q.slots.take(idx); served {
				return v, ok
			}
		}

		if q.lock.tryAcquire() {
			return q.finishLocked(idx, waiting, kind, elem)
		}

		if !waiting && q.slots.publish(idx, kind, elem) {
			waiting = true
			continue
		}

		if q.backoff {
			bo.Wait()
		} else {
			sw.Once()
		}
	}
}

// finishLocked completes an operation whose caller has just won the
// combiner lock, and releases it.
//
// A waiting caller first withdraws its announcement from slot idx. If a
// previous combiner already served it, that Result is returned and the
// operation is not applied a second time.
func (q *FC[T]) finishLocked(idx int, waiting bool, kind uint64, elem *T) (T, bool) {
	if waiting {
		if v, ok, served := q.slots.reclaim(idx); served {
			q.combine()
			return v, ok
		}
	}
	v, ok := q.apply(kind, elem)
	q.combine()
	return v, ok
}

// apply performs the lock holder's own operation on the backing queue.
func (q *FC[T]) apply(kind uint64, elem *T) (T, bool) {
	q.stats.direct.AddAcqRel(1)
	if kind == slotEnqueue {
		q.backing.PushBack(*elem)
		return *elem, true
	}
	return q.backing.PopFront()
}
