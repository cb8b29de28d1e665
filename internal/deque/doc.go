// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package deque provides the sequential FIFO that backs fcq queues.
//
// Nothing in this package synchronizes. Every method must be called by
// the goroutine currently holding the owning queue's combiner lock.
package deque
