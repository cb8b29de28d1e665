// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fcq

import "code.hybscloud.com/atomix"

// Stats is a snapshot of combining activity.
//
// Counters are only advanced by the combiner lock holder and read without
// synchronization against in-flight operations, so a snapshot taken under
// contention is approximate. After all operations have returned it is exact:
//
//	Direct + Served == number of completed Enqueue and Dequeue calls
type Stats struct {
	// Passes is the number of combine passes run.
	Passes uint64
	// Direct counts operations applied by the lock holder for itself.
	Direct uint64
	// Served counts announced requests applied on behalf of other goroutines.
	Served uint64
}

// CombiningRate returns the fraction of operations that were served by
// another goroutine's combine pass. Returns 0 before any operation.
func (s Stats) CombiningRate() float64 {
	total := s.Direct + s.Served
	if total == 0 {
		return 0
	}
	return float64(s.Served) / float64(total)
}

type stats struct {
	passes atomix.Uint64
	direct atomix.Uint64
	served atomix.Uint64
}

// Stats returns a snapshot of the queue's combining counters.
func (q *FC[T]) Stats() Stats {
	return Stats{
		Passes: q.stats.passes.LoadAcquire(),
		Direct: q.stats.direct.LoadAcquire(),
		Served: q.stats.served.LoadAcquire(),
	}
}
