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

import "iter"

// Viewer is the unguarded view a container adapter exposes to Protected.
// Both methods read the underlying container with no synchronization; the
// mixin brackets every call to them with the appropriate guard, and the
// Unsafe* escape hatches forward to them directly for callers that hold a
// guard of their own.
type Viewer[T comparable] interface {
	// UnsafeValues iterates the container's elements in its natural order.
	UnsafeValues() iter.Seq[T]
	// UnsafeLen returns the number of elements.
	UnsafeLen() int
}

// Protected is the generic base a container adapter embeds to become
// thread-safe. It owns the adapter's Holder and dispatches every
// acquisition to the policy-appropriate lock: an adapter operation calls
// AcquireWriteLock (mutating) or AcquireReadLock (read-only) on entry,
// defers the guard's Release, and performs the underlying container
// operation in between. The mixin never touches the container itself
// except through the adapter's Viewer.
//
// The query helpers (ForEach, FindIf, Contains, Count, Copy) are built
// purely on the Viewer's iteration and run entirely under one read-side
// acquisition.
type Protected[T comparable] struct {
	holder *Holder
	view   Viewer[T]
}

// NewProtected binds a Protected mixin to an adapter's unguarded view,
// allocating the lock for the given policy. Adapters call this once at
// construction, passing themselves as the view.
func NewProtected[T comparable](view Viewer[T], policy Policy) Protected[T] {
	return Protected[T]{holder: NewHolder(policy), view: view}
}

// Holder returns the lock holder protecting the adapter.
func (p *Protected[T]) Holder() *Holder {
	return p.holder
}

// Policy returns the policy the adapter was instantiated with.
func (p *Protected[T]) Policy() Policy {
	return p.holder.Policy()
}

// AcquireWriteLock acquires exclusive access under any policy: Exclusive
// and Spin take their single lock, ReaderWriter takes the writer side, and
// Unsynchronized returns an empty guard without blocking or touching any
// atomic state.
func (p *Protected[T]) AcquireWriteLock() Guard {
	if p.holder.policy == ReaderWriter {
		return p.holder.RWWriteLock()
	}
	return p.holder.WriteLock()
}

// AcquireReadLock acquires read access. Under ReaderWriter any number of
// such acquisitions may be held concurrently; under every other policy
// there is no shared-lock concept and it takes the same exclusive path as
// AcquireWriteLock.
func (p *Protected[T]) AcquireReadLock() Guard {
	if p.holder.policy == ReaderWriter {
		return p.holder.ReadLock()
	}
	return p.holder.WriteLock()
}

// AcquireWriteGuard returns a write guard the caller holds across several
// raw operations. Identical to AcquireWriteLock; the name marks call sites
// that keep the guard beyond a single operation.
func (p *Protected[T]) AcquireWriteGuard() Guard {
	return p.AcquireWriteLock()
}

// AcquireReadGuard returns a read guard the caller holds across several
// raw operations.
func (p *Protected[T]) AcquireReadGuard() Guard {
	return p.AcquireReadLock()
}

// WithWriteLock runs fn under a single write acquisition. Use it to batch
// several Unsafe* operations under one lock instead of paying the
// acquisition cost per operation. The lock is released even if fn panics.
func (p *Protected[T]) WithWriteLock(fn func()) {
	g := p.AcquireWriteLock()
	defer g.Release()
	fn()
}

// WithReadLock runs fn under a single read acquisition.
func (p *Protected[T]) WithReadLock(fn func()) {
	g := p.AcquireReadLock()
	defer g.Release()
	fn()
}

// UnsafeLen returns the element count with no lock acquisition. Valid only
// when the caller already holds a guard or guarantees external
// synchronization.
func (p *Protected[T]) UnsafeLen() int {
	return p.view.UnsafeLen()
}

// UnsafeEmpty reports emptiness with no lock acquisition. Same caller
// contract as UnsafeLen.
func (p *Protected[T]) UnsafeEmpty() bool {
	return p.view.UnsafeLen() == 0
}

// ForEach calls fn for every element in iteration order, holding the read
// lock for the whole traversal.
func (p *Protected[T]) ForEach(fn func(T)) {
	g := p.AcquireReadLock()
	defer g.Release()
	for v := range p.view.UnsafeValues() {
		fn(v)
	}
}

// FindIf returns the first element satisfying pred, in iteration order.
// The second result reports whether any element matched.
func (p *Protected[T]) FindIf(pred func(T) bool) (T, bool) {
	g := p.AcquireReadLock()
	defer g.Release()
	for v := range p.view.UnsafeValues() {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any element equals value.
func (p *Protected[T]) Contains(value T) bool {
	g := p.AcquireReadLock()
	defer g.Release()
	for v := range p.view.UnsafeValues() {
		if v == value {
			return true
		}
	}
	return false
}

// Count returns the number of elements equal to value.
func (p *Protected[T]) Count(value T) int {
	g := p.AcquireReadLock()
	defer g.Release()
	n := 0
	for v := range p.view.UnsafeValues() {
		if v == value {
			n++
		}
	}
	return n
}

// Copy returns a snapshot of the elements in iteration order, taken under
// one read acquisition.
func (p *Protected[T]) Copy() []T {
	g := p.AcquireReadLock()
	defer g.Release()
	out := make([]T, 0, p.view.UnsafeLen())
	for v := range p.view.UnsafeValues() {
		out = append(out, v)
	}
	return out
}
