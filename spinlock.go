// Copyright 2026 The TSafe Project Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tsafe

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// SpinLock is a busy-wait exclusive lock built on a single atomic flag.
//
// A goroutine that fails to acquire the flag loops, yielding to the
// scheduler between attempts, until the flag transitions free to locked.
// There is no wait queue: under heavy contention acquisition latency is
// unbounded and starvation is possible. That is the accepted trade-off
// for the near-zero cost of the uncontended path.
//
// SpinLock is not reentrant. A goroutine that calls Lock twice without an
// intervening Unlock deadlocks against itself. Calling Unlock without a
// matching successful Lock is a programming error and is not detected.
//
// The zero value is an unlocked SpinLock. A SpinLock must not be copied
// after first use.
type SpinLock struct {
	state atomic.Uint32
}

var _ sync.Locker = (*SpinLock)(nil)

// Lock spins until it acquires the lock.
func (l *SpinLock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// TryLock makes a single acquisition attempt and reports whether it
// succeeded. On success the caller holds the lock exactly as if Lock had
// returned.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock, allowing one spinning goroutine to acquire it.
func (l *SpinLock) Unlock() {
	l.state.Store(0)
}
