// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fcq

import "code.hybscloud.com/fcq/internal/deque"

// Options configures queue creation.
type Options struct {
	// Announcement slots (>= 1)
	slots int

	// Performance hints
	backoff bool // Adaptive backoff instead of CPU pause between retries
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Defaults: 3 slots, spin-pause retries
//	q := fcq.Build[Event](fcq.New())
//
//	// More slots for more expected contenders
//	q := fcq.Build[*Request](fcq.New().Slots(8))
//
//	// Caller-supplied backing queue
//	q := fcq.BuildWith[Job](fcq.New(), myRingDeque)
type Builder struct {
	opts Options
}

// New creates a queue builder with DefaultSlots announcement slots.
func New() *Builder {
	return &Builder{opts: Options{slots: DefaultSlots}}
}

// Slots sets the number of announcement slots.
//
// Slot count bounds how many goroutines can have a request announced at
// once; goroutines beyond that spin until a slot frees up or they win the
// combiner lock. It affects throughput, not correctness.
//
// Panics if n < 1.
func (b *Builder) Slots(n int) *Builder {
	if n < 1 {
		panic("fcq: slots must be >= 1")
	}
	b.opts.slots = n
	return b
}

// Backoff selects iox adaptive backoff between retries instead of a single
// CPU pause per iteration.
//
// iox.Backoff sleeps once its spin budget is used up, so a goroutine waiting
// for the combiner is parked between retries instead of spinning. Results
// are unaffected.
//
// Trade-off: less wasted CPU under sustained contention, higher handoff
// latency when the combiner finishes quickly.
func (b *Builder) Backoff() *Builder {
	b.opts.backoff = true
	return b
}

// Build creates an FC[T] backed by a chunked sequential queue.
func Build[T any](b *Builder) *FC[T] {
	return newFC[T](b.opts.slots, deque.NewChunked[T](), b.opts.backoff)
}

// BuildWith creates an FC[T] that delegates to backing.
//
// backing must not be used by anything else once handed over.
// Panics if backing is nil.
func BuildWith[T any](b *Builder, backing Sequential[T]) *FC[T] {
	return newFC[T](b.opts.slots, backing, b.opts.backoff)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
