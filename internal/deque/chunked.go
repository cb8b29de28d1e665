// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque

import "sync"

// chunkSize is the number of elements per node in the chunk list.
const chunkSize = 128

// Chunked is an unbounded FIFO built from a linked list of fixed-size chunks.
//
// Chunked is NOT thread-safe. The caller must provide exclusion; in fcq
// that is the combiner lock.
//
// Exhausted chunks are recycled through a per-instance sync.Pool, so a
// queue that oscillates around a steady size stops allocating.
type Chunked[T any] struct {
	head   *chunk[T]
	tail   *chunk[T]
	length int
	pool   sync.Pool
}

// chunk is a fixed-size node with read/write cursors for O(1) push and pop.
type chunk[T any] struct {
	elems   [chunkSize]T
	next    *chunk[T]
	readPos int // First unread index
	pos     int // First unused index
}

// NewChunked creates an empty chunked queue.
func NewChunked[T any]() *Chunked[T] {
	return &Chunked[T]{}
}

func (d *Chunked[T]) newChunk() *chunk[T] {
	if c, ok := d.pool.Get().(*chunk[T]); ok {
		c.pos = 0
		c.readPos = 0
		c.next = nil
		return c
	}
	return new(chunk[T])
}

// recycle returns a fully consumed chunk to the pool.
// PopFront has already zeroed every element slot it read.
func (d *Chunked[T]) recycle(c *chunk[T]) {
	c.pos = 0
	c.readPos = 0
	c.next = nil
	d.pool.Put(c)
}

// PushBack appends elem at the tail.
func (d *Chunked[T]) PushBack(elem T) {
	if d.tail == nil {
		d.tail = d.newChunk()
		d.head = d.tail
	}
	if d.tail.pos == chunkSize {
		c := d.newChunk()
		d.tail.next = c
		d.tail = c
	}
	d.tail.elems[d.tail.pos] = elem
	d.tail.pos++
	d.length++
}

// PopFront removes and returns the head element.
// Returns (zero-value, false) if the queue is empty.
func (d *Chunked[T]) PopFront() (T, bool) {
	var zero T
	h := d.head
	if h == nil || h.readPos >= h.pos {
		return zero, false
	}

	elem := h.elems[h.readPos]
	h.elems[h.readPos] = zero
	h.readPos++
	d.length--

	if h.readPos >= h.pos {
		if h == d.tail {
			// Single chunk drained: rewind cursors instead of freeing.
			h.pos = 0
			h.readPos = 0
		} else {
			d.head = h.next
			d.recycle(h)
		}
	}
	return elem, true
}

// Len returns the number of queued elements.
func (d *Chunked[T]) Len() int {
	return d.length
}
