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
	"slices"

	tsafe "github.com/tsafe-project/go-tsafe"
)

// Slice is a thread-safe dynamic array. All operations are bracketed by
// the policy-appropriate lock; index-taking operations return ErrOutOfRange
// rather than panicking, because by the time a caller could re-check the
// bound another writer may have changed it.
type Slice[T comparable] struct {
	tsafe.Protected[T]
	data []T
}

// NewSlice creates an empty slice protected by the configured policy.
// A nil config selects the default (Exclusive).
func NewSlice[T comparable](cfg *Config) *Slice[T] {
	s := &Slice[T]{}
	s.Protected = tsafe.NewProtected[T](s, policyOf(cfg))
	return s
}

// NewSliceFrom creates a slice seeded with the given values.
func NewSliceFrom[T comparable](cfg *Config, values ...T) *Slice[T] {
	s := NewSlice[T](cfg)
	s.data = append(s.data, values...)
	return s
}

// UnsafeValues iterates the elements front to back with no locking.
func (s *Slice[T]) UnsafeValues() iter.Seq[T] {
	return slices.Values(s.data)
}

// UnsafeLen returns the element count with no locking.
func (s *Slice[T]) UnsafeLen() int {
	return len(s.data)
}

// UnsafeRef returns the backing slice with no locking. Callers must hold
// a guard or synchronize externally; appending through the pointer is
// visible to the container.
func (s *Slice[T]) UnsafeRef() *[]T {
	return &s.data
}

// Append adds a value at the back.
func (s *Slice[T]) Append(value T) {
	g := s.AcquireWriteLock()
	defer g.Release()
	s.data = append(s.data, value)
}

// AppendAll adds all values at the back under one acquisition.
func (s *Slice[T]) AppendAll(values ...T) {
	g := s.AcquireWriteLock()
	defer g.Release()
	s.data = append(s.data, values...)
}

// Insert places value at index i, shifting later elements back. i may
// equal Len, which appends.
func (s *Slice[T]) Insert(i int, value T) error {
	g := s.AcquireWriteLock()
	defer g.Release()
	if i < 0 || i > len(s.data) {
		return fmt.Errorf("%w: insert at %d, len %d", ErrOutOfRange, i, len(s.data))
	}
	s.data = slices.Insert(s.data, i, value)
	return nil
}

// RemoveAt removes and returns the element at index i.
func (s *Slice[T]) RemoveAt(i int) (T, error) {
	g := s.AcquireWriteLock()
	defer g.Release()
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, fmt.Errorf("%w: remove at %d, len %d", ErrOutOfRange, i, len(s.data))
	}
	v := s.data[i]
	s.data = slices.Delete(s.data, i, i+1)
	return v, nil
}

// Pop removes and returns the last element.
func (s *Slice[T]) Pop() (T, error) {
	g := s.AcquireWriteLock()
	defer g.Release()
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// Get returns the element at index i.
func (s *Slice[T]) Get(i int) (T, error) {
	g := s.AcquireReadLock()
	defer g.Release()
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, fmt.Errorf("%w: get at %d, len %d", ErrOutOfRange, i, len(s.data))
	}
	return s.data[i], nil
}

// Set replaces the element at index i.
func (s *Slice[T]) Set(i int, value T) error {
	g := s.AcquireWriteLock()
	defer g.Release()
	if i < 0 || i >= len(s.data) {
		return fmt.Errorf("%w: set at %d, len %d", ErrOutOfRange, i, len(s.data))
	}
	s.data[i] = value
	return nil
}

// Front returns the first element.
func (s *Slice[T]) Front() (T, error) {
	g := s.AcquireReadLock()
	defer g.Release()
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.data[0], nil
}

// Back returns the last element.
func (s *Slice[T]) Back() (T, error) {
	g := s.AcquireReadLock()
	defer g.Release()
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.data[len(s.data)-1], nil
}

// Len returns the element count.
func (s *Slice[T]) Len() int {
	g := s.AcquireReadLock()
	defer g.Release()
	return len(s.data)
}

// Empty reports whether the slice holds no elements.
func (s *Slice[T]) Empty() bool {
	g := s.AcquireReadLock()
	defer g.Release()
	return len(s.data) == 0
}

// Clear removes all elements, keeping the allocated capacity.
func (s *Slice[T]) Clear() {
	g := s.AcquireWriteLock()
	defer g.Release()
	s.data = s.data[:0]
}

// Resize sets the length to n, truncating or padding with zero values.
func (s *Slice[T]) Resize(n int) error {
	g := s.AcquireWriteLock()
	defer g.Release()
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrOutOfRange, n)
	}
	if n <= len(s.data) {
		s.data = s.data[:n]
		return nil
	}
	s.data = append(s.data, make([]T, n-len(s.data))...)
	return nil
}

// Grow reserves capacity for n more elements without changing the length.
func (s *Slice[T]) Grow(n int) {
	g := s.AcquireWriteLock()
	defer g.Release()
	s.data = slices.Grow(s.data, n)
}

// Values returns a snapshot of the elements front to back.
func (s *Slice[T]) Values() []T {
	return s.Copy()
}
