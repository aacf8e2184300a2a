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
	"sync"

	"github.com/tsafe-project/go-tsafe/internal/syncutil"
)

// guardKind tags which payload of the Guard union is active. Exactly one
// payload is active per guard; guardNone means the guard holds nothing and
// releasing it is a no-op.
type guardKind uint8

const (
	guardNone guardKind = iota
	guardExclusive
	guardSpin
	guardRWWriter
	guardRWReader
)

// Guard is a single-owner handle on a held lock. It can represent any of
// the lock kinds this package supports: an exclusive mutex, the spin
// primitive, a reader/writer lock held in writer mode, a reader/writer
// lock held in reader mode, or nothing at all (the Unsynchronized policy).
//
// Release returns the held lock exactly once; further Release calls are
// no-ops. Transfer hands the held lock to a new guard and empties the
// source, so a chain of transfers still releases exactly once.
//
// A Guard must not be copied: releasing two copies of the same held guard
// releases the underlying lock twice, which for most primitives is a
// fatal runtime error. Pass guards by Transfer, not by assignment.
type Guard struct {
	locker sync.Locker       // active when kind == guardExclusive
	spin   *SpinLock         // active when kind == guardSpin
	rw     *syncutil.RWMutex // active when kind is guardRWWriter or guardRWReader
	kind   guardKind
}

// newExclusiveGuard wraps an already-acquired exclusive locker.
func newExclusiveGuard(l sync.Locker) Guard {
	return Guard{kind: guardExclusive, locker: l}
}

// newSpinGuard acquires the spin primitive and wraps it. Unlike the other
// constructors it performs the acquisition itself; the spin primitive has
// no native guard type to take over.
func newSpinGuard(s *SpinLock) Guard {
	s.Lock()
	return Guard{kind: guardSpin, spin: s}
}

// newRWWriterGuard wraps a reader/writer lock already held in writer mode.
func newRWWriterGuard(rw *syncutil.RWMutex) Guard {
	return Guard{kind: guardRWWriter, rw: rw}
}

// newRWReaderGuard wraps a reader/writer lock already held in reader mode.
func newRWReaderGuard(rw *syncutil.RWMutex) Guard {
	return Guard{kind: guardRWReader, rw: rw}
}

// emptyGuard returns a guard holding nothing. Used for the Unsynchronized
// policy; constructing and releasing it touches no atomic and never
// blocks.
func emptyGuard() Guard {
	return Guard{kind: guardNone}
}

// Held reports whether the guard currently holds a lock.
func (g *Guard) Held() bool {
	return g.kind != guardNone
}

// Release returns the held lock. The first call releases the active
// payload and empties the guard; subsequent calls do nothing.
func (g *Guard) Release() {
	switch g.kind {
	case guardNone:
		return
	case guardExclusive:
		g.locker.Unlock()
	case guardSpin:
		g.spin.Unlock()
	case guardRWWriter:
		g.rw.Unlock()
	case guardRWReader:
		g.rw.RUnlock()
	}
	g.kind = guardNone
	g.locker = nil
	g.spin = nil
	g.rw = nil
}

// Transfer moves ownership of the held lock into the returned guard and
// empties g, whose Release becomes a no-op. Transferring an empty guard
// yields another empty guard.
func (g *Guard) Transfer() Guard {
	moved := *g
	g.kind = guardNone
	g.locker = nil
	g.spin = nil
	g.rw = nil
	return moved
}
