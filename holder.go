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
	"github.com/tsafe-project/go-tsafe/internal/syncutil"
)

// Holder owns the one concrete lock matching its policy: a mutex for
// Exclusive, a SpinLock for Spin, a reader/writer lock for ReaderWriter,
// and nothing at all for Unsynchronized. Exactly one Holder exists per
// protected resource and lives as long as the resource does; it is never
// shared between two resources.
//
// The lock-returning methods hand out Guards bound to the caller's scope.
// Calling a method the holder's policy does not support is a programming
// error and panics with the matching sentinel from errors.go.
type Holder struct {
	mu     *syncutil.Mutex
	spin   *SpinLock
	rw     *syncutil.RWMutex
	policy Policy
}

// NewHolder allocates the concrete lock for the given policy. It panics
// with ErrInvalidPolicy when the policy is outside the defined set.
func NewHolder(policy Policy) *Holder {
	h := &Holder{policy: policy}
	switch policy {
	case Exclusive:
		h.mu = &syncutil.Mutex{}
	case Spin:
		h.spin = &SpinLock{}
	case ReaderWriter:
		h.rw = &syncutil.RWMutex{}
	case Unsynchronized:
		// Nothing to allocate; acquisition is free by construction.
	default:
		panic(ErrInvalidPolicy)
	}
	Debugf("holder created with %s policy", policy)
	return h
}

// Policy returns the policy fixed at construction.
func (h *Holder) Policy() Policy {
	return h.policy
}

// WriteLock acquires exclusive access and returns the guard holding it.
// For Exclusive it blocks on the mutex; for Spin it busy-waits on the spin
// primitive; for Unsynchronized it returns an empty guard without touching
// any synchronization state. Under ReaderWriter exclusive access is a
// writer-mode acquisition, which goes through RWWriteLock instead; calling
// WriteLock there panics with ErrWriteLockUnsupported.
func (h *Holder) WriteLock() Guard {
	switch h.policy {
	case Exclusive:
		h.mu.Lock()
		return newExclusiveGuard(h.mu)
	case Spin:
		return newSpinGuard(h.spin)
	case Unsynchronized:
		return emptyGuard()
	default:
		panic(ErrWriteLockUnsupported)
	}
}

// Lock is an alias for WriteLock.
func (h *Holder) Lock() Guard {
	return h.WriteLock()
}

// ReadLock acquires the reader side of the reader/writer lock, permitting
// any number of concurrent readers. It panics with ErrReadLockUnsupported
// unless the policy is ReaderWriter.
func (h *Holder) ReadLock() Guard {
	if h.policy != ReaderWriter {
		panic(ErrReadLockUnsupported)
	}
	h.rw.RLock()
	return newRWReaderGuard(h.rw)
}

// RWWriteLock acquires the writer side of the reader/writer lock,
// excluding all readers and writers. It panics with
// ErrRWWriteLockUnsupported unless the policy is ReaderWriter.
func (h *Holder) RWWriteLock() Guard {
	if h.policy != ReaderWriter {
		panic(ErrRWWriteLockUnsupported)
	}
	h.rw.Lock()
	return newRWWriterGuard(h.rw)
}
