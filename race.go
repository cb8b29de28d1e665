// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package fcq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent stress tests: slot payloads are plain
// fields ordered by atomix acquire/release on the slot state word, which
// the detector cannot observe.
const RaceEnabled = true
