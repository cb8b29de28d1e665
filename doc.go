// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fcq provides an unbounded FIFO queue based on flat combining.
//
// Instead of every goroutine synchronizing on the queue directly, one
// goroutine at a time becomes the combiner: it holds a try-lock, applies
// its own operation to a plain sequential queue, applies every request
// other goroutines have announced, and releases the lock. A single lock
// acquisition therefore serves several operations.
//
// # Quick Start
//
//	q := fcq.NewFC[Event]()
//
//	ev := Event{ID: 1}
//	q.Enqueue(&ev)
//
//	if ev, ok := q.Dequeue(); ok {
//	    handle(ev)
//	}
//
// Builder API:
//
//	q := fcq.Build[Event](fcq.New())                      // 3 slots
//	q := fcq.Build[Event](fcq.New().Slots(8))             // 8 slots
//	q := fcq.Build[Event](fcq.New().Backoff())            // iox backoff
//	q := fcq.BuildWith[Event](fcq.New(), customSequential) // own backing queue
//
// # Protocol
//
// An operation picks one random announcement slot and loops:
//
//  1. If it has announced a request and the slot holds a Result, it takes
//     the Result and returns.
//  2. If it wins the combiner lock, it withdraws its announcement (returning
//     the Result if a previous combiner already served it), otherwise
//     applies its own operation directly. Either way it then runs a
//     combine pass and releases the lock.
//  3. If it loses the lock and has not announced yet, it tries to claim the
//     chosen slot (Empty → Request by compare-and-swap).
//
// A combine pass scans slots 0..n-1 once. Dequeue requests receive the head
// of the sequential queue (or "empty"); Enqueue requests are appended and
// acknowledged. Results already waiting to be taken are left alone.
//
// # Ordering
//
// FC is linearizable, but it is not arrival-ordered. Requests served in
// the same combine pass take effect in slot-index order: if goroutine A
// announces Enqueue(1) in slot 2 and goroutine B later announces
// Enqueue(2) in slot 0, a single pass appends 2 before 1. Operations that
// one goroutine issues back to back do keep their order, since each call
// returns only after its effect is applied.
//
// # Progress
//
// By default nothing blocks: waiting goroutines spin with a CPU pause
// ([code.hybscloud.com/spin]) and never leave the CPU. With Backoff(),
// retries use [code.hybscloud.com/iox] adaptive backoff, which escalates to
// sleeping, so a waiting goroutine is parked between retries rather than
// spinning. Neither mode changes results. The combiner always finishes its
// pass and releases, so the queue cannot deadlock; when more goroutines
// contend than there are slots, the extra ones retry until a slot frees or
// they win the lock. Keep the number of concurrent callers small relative
// to the slot count.
//
// # Empty Queue
//
// Dequeue on an empty queue returns (zero-value, false). It is a normal
// result, not an error. TryDequeue maps it to [ErrWouldBlock] for code
// written against lfq-style (T, error) consumers.
//
// # Race Detection
//
// Slot payloads are plain fields handed between goroutines by
// acquire/release operations on the slot state word ([code.hybscloud.com/atomix]).
// Go's race detector cannot observe that ordering and may report false
// positives. Concurrent tests are skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the lock and slot
// words, [code.hybscloud.com/spin] and [code.hybscloud.com/iox] for retry
// pacing and semantic errors, and [github.com/valyala/fastrand] for slot
// selection.
package fcq
