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

package containers

import (
	"fmt"
	"iter"

	tsafe "github.com/tsafe-project/go-tsafe"
)

// dequeMinCap is the capacity allocated on the first push.
const dequeMinCap = 8

// Deque is a thread-safe double-ended queue backed by a growable ring
// buffer. Pushes and pops at both ends are amortized O(1); indexed access
// is O(1).
type Deque[T comparable] struct {
	tsafe.Protected[T]
	buf  []T
	head int
	size int
}

// NewDeque creates an empty deque protected by the configured policy.
// A nil config selects the default (Exclusive).
func NewDeque[T comparable](cfg *Config) *Deque[T] {
	d := &Deque[T]{}
	d.Protected = tsafe.NewProtected[T](d, policyOf(cfg))
	return d
}

// UnsafeValues iterates the elements front to back with no locking.
func (d *Deque[T]) UnsafeValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.buf[(d.head+i)%len(d.buf)]) {
				return
			}
		}
	}
}

// UnsafeLen returns the element count with no locking.
func (d *Deque[T]) UnsafeLen() int {
	return d.size
}

// grow doubles the buffer and re-lays the ring out from index 0. Caller
// holds the write lock.
func (d *Deque[T]) grow() {
	newCap := dequeMinCap
	if len(d.buf) > 0 {
		newCap = 2 * len(d.buf)
	}
	buf := make([]T, newCap)
	for i := 0; i < d.size; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}

// PushBack adds a value at the back.
func (d *Deque[T]) PushBack(value T) {
	g := d.AcquireWriteLock()
	defer g.Release()
	if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)%len(d.buf)] = value
	d.size++
}

// PushFront adds a value at the front.
func (d *Deque[T]) PushFront(value T) {
	g := d.AcquireWriteLock()
	defer g.Release()
	if d.size == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = value
	d.size++
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, error) {
	g := d.AcquireWriteLock()
	defer g.Release()
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	v := d.buf[d.head]
	var zero T
	d.buf[d.head] = zero // release the reference
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return v, nil
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, error) {
	g := d.AcquireWriteLock()
	defer g.Release()
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	i := (d.head + d.size - 1) % len(d.buf)
	v := d.buf[i]
	var zero T
	d.buf[i] = zero
	d.size--
	return v, nil
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (T, error) {
	g := d.AcquireReadLock()
	defer g.Release()
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.buf[d.head], nil
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (T, error) {
	g := d.AcquireReadLock()
	defer g.Release()
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.buf[(d.head+d.size-1)%len(d.buf)], nil
}

// Get returns the element at index i, counted from the front.
func (d *Deque[T]) Get(i int) (T, error) {
	g := d.AcquireReadLock()
	defer g.Release()
	if i < 0 || i >= d.size {
		var zero T
		return zero, fmt.Errorf("%w: get at %d, len %d", ErrOutOfRange, i, d.size)
	}
	return d.buf[(d.head+i)%len(d.buf)], nil
}

// Set replaces the element at index i, counted from the front.
func (d *Deque[T]) Set(i int, value T) error {
	g := d.AcquireWriteLock()
	defer g.Release()
	if i < 0 || i >= d.size {
		return fmt.Errorf("%w: set at %d, len %d", ErrOutOfRange, i, d.size)
	}
	d.buf[(d.head+i)%len(d.buf)] = value
	return nil
}

// Len returns the element count.
func (d *Deque[T]) Len() int {
	g := d.AcquireReadLock()
	defer g.Release()
	return d.size
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	g := d.AcquireReadLock()
	defer g.Release()
	return d.size == 0
}

// Clear removes all elements and drops the buffer.
func (d *Deque[T]) Clear() {
	g := d.AcquireWriteLock()
	defer g.Release()
	d.buf = nil
	d.head = 0
	d.size = 0
}

// Values returns a snapshot of the elements front to back.
func (d *Deque[T]) Values() []T {
	return d.Copy()
}
