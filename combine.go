// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fcq

// combine serves every announced request, then releases the combiner lock.
// Must be called by the lock holder.
func (q *FC[T]) combine() {
	q.serve()
	q.lock.release()
}

// serve runs one combine pass without releasing the lock.
//
// Slots are scanned once in ascending index order, so requests published
// in the same window are applied in index order rather than publish order.
// Claimed slots are not yet announced and Result slots belong to waiting
// publishers; both are skipped.
func (q *FC[T]) serve() {
	var served uint64
	for i := range q.slots {
		c := &q.slots[i]
		switch c.state.LoadAcquire() {
		case slotDequeue:
			elem, ok := q.backing.PopFront()
			c.complete(elem, ok)
			served++
		case slotEnqueue:
			q.backing.PushBack(c.data)
			c.complete(c.data, true)
			served++
		}
	}
	q.stats.passes.AddAcqRel(1)
	if served > 0 {
		q.stats.served.AddAcqRel(served)
	}
}
