// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fcq

import (
	"code.hybscloud.com/atomix"
	"github.com/valyala/fastrand"
)

// DefaultSlots is the announcement capacity used by NewFC and New.
const DefaultSlots = 3

// Slot states. A slot moves Empty → Claimed → Enqueue|Dequeue (publisher),
// then → Result (combiner), then → Empty (publisher). The lock holder may
// also reset its own slot to Empty from Enqueue, Dequeue or Result.
const (
	slotEmpty   uint64 = iota
	slotClaimed        // Publisher is copying the payload
	slotEnqueue
	slotDequeue
	slotResult
)

// slot is one announcement cell.
//
// data and ok are plain fields. They are written by the side that owns the
// slot in its current state and published by a release store of state;
// the other side reads them only after an acquire load observes that state.
type slot[T any] struct {
	state atomix.Uint64
	ok    bool // Result only: false for a dequeue that found the queue empty
	data  T
	_     pad
}

// slots is the shared announcement array. Any goroutine may use any index.
type slots[T any] []slot[T]

// pick returns a uniformly random index. Called once per operation.
func (s slots[T]) pick() int {
	return int(fastrand.Uint32n(uint32(len(s))))
}

// publish claims slot i if it is Empty and announces a request of the
// given kind. elem is only read for slotEnqueue.
// Returns false if the slot was occupied.
func (s slots[T]) publish(i int, kind uint64, elem *T) bool {
	c := &s[i]
	if !c.state.CompareAndSwapAcqRel(slotEmpty, slotClaimed) {
		return false
	}
	if kind == slotEnqueue {
		c.data = *elem
	}
	c.state.StoreRelease(kind)
	return true
}

// take consumes a Result from slot i, resetting it to Empty.
// Only the goroutine that published into slot i may call take.
// Returns served=false if no Result is present yet.
func (s slots[T]) take(i int) (elem T, ok bool, served bool) {
	c := &s[i]
	if c.state.LoadAcquire() != slotResult {
		return elem, false, false
	}
	elem, ok = c.data, c.ok
	c.clear()
	return elem, ok, true
}

// reclaim withdraws the caller's own announcement from slot i.
// Combiner lock holder only. If a previous combiner already served the
// request its Result is returned with served=true; the slot is Empty
// afterwards either way.
func (s slots[T]) reclaim(i int) (elem T, ok bool, served bool) {
	c := &s[i]
	if c.state.LoadAcquire() == slotResult {
		elem, ok, served = c.data, c.ok, true
	}
	c.clear()
	return elem, ok, served
}

// clear resets the cell to Empty and drops the payload reference.
func (c *slot[T]) clear() {
	var zero T
	c.data = zero
	c.ok = false
	c.state.StoreRelease(slotEmpty)
}

// complete stores a Result and hands the cell back to its publisher.
func (c *slot[T]) complete(elem T, ok bool) {
	c.data = elem
	c.ok = ok
	c.state.StoreRelease(slotResult)
}
