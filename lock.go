// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fcq

import "code.hybscloud.com/atomix"

const (
	lockFree uint64 = 0
	lockHeld uint64 = 1
)

// combinerLock is the exclusive-access word that elects the combiner.
//
// It is a try-lock only: there is no blocking acquire. The holder must
// release before returning control to its caller, and must not call
// tryAcquire again while holding it.
type combinerLock struct {
	word atomix.Uint64
}

// tryAcquire attempts one free→held transition.
func (l *combinerLock) tryAcquire() bool {
	return l.word.CompareAndSwapAcqRel(lockFree, lockHeld)
}

// release publishes every write made under the lock and frees it.
func (l *combinerLock) release() {
	l.word.StoreRelease(lockFree)
}

// held reports whether some goroutine currently holds the lock.
func (l *combinerLock) held() bool {
	return l.word.LoadAcquire() == lockHeld
}
