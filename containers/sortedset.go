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
	"cmp"
	"iter"
	"maps"
	"slices"

	tsafe "github.com/tsafe-project/go-tsafe"
)

// SortedSet is a thread-safe set whose iteration and Values results are
// in ascending order. Like SortedMap it keeps a hash backing store and
// sorts on demand: membership stays O(1) and ordered views cost
// O(n log n).
type SortedSet[T cmp.Ordered] struct {
	tsafe.Protected[T]
	data map[T]struct{}
}

// NewSortedSet creates an empty sorted set protected by the configured
// policy. A nil config selects the default (Exclusive).
func NewSortedSet[T cmp.Ordered](cfg *Config) *SortedSet[T] {
	s := &SortedSet[T]{data: make(map[T]struct{})}
	s.Protected = tsafe.NewProtected[T](s, policyOf(cfg))
	return s
}

// UnsafeValues iterates the elements in ascending order with no locking.
func (s *SortedSet[T]) UnsafeValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Sorted(maps.Keys(s.data)) {
			if !yield(v) {
				return
			}
		}
	}
}

// UnsafeLen returns the element count with no locking.
func (s *SortedSet[T]) UnsafeLen() int {
	return len(s.data)
}

// UnsafeRef returns the backing map with no locking. Callers must hold a
// guard or synchronize externally.
func (s *SortedSet[T]) UnsafeRef() map[T]struct{} {
	return s.data
}

// Add inserts value and reports whether it was absent before.
func (s *SortedSet[T]) Add(value T) bool {
	g := s.AcquireWriteLock()
	defer g.Release()
	if _, ok := s.data[value]; ok {
		return false
	}
	s.data[value] = struct{}{}
	return true
}

// Delete removes value and reports whether it was present.
func (s *SortedSet[T]) Delete(value T) bool {
	g := s.AcquireWriteLock()
	defer g.Release()
	if _, ok := s.data[value]; !ok {
		return false
	}
	delete(s.data, value)
	return true
}

// Has reports whether value is in the set.
func (s *SortedSet[T]) Has(value T) bool {
	g := s.AcquireReadLock()
	defer g.Release()
	_, ok := s.data[value]
	return ok
}

// Min returns the smallest element.
func (s *SortedSet[T]) Min() (T, error) {
	g := s.AcquireReadLock()
	defer g.Release()
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return slices.Min(slices.Collect(maps.Keys(s.data))), nil
}

// Max returns the largest element.
func (s *SortedSet[T]) Max() (T, error) {
	g := s.AcquireReadLock()
	defer g.Release()
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return slices.Max(slices.Collect(maps.Keys(s.data))), nil
}

// Len returns the element count.
func (s *SortedSet[T]) Len() int {
	g := s.AcquireReadLock()
	defer g.Release()
	return len(s.data)
}

// Empty reports whether the set holds no elements.
func (s *SortedSet[T]) Empty() bool {
	g := s.AcquireReadLock()
	defer g.Release()
	return len(s.data) == 0
}

// Clear removes all elements.
func (s *SortedSet[T]) Clear() {
	g := s.AcquireWriteLock()
	defer g.Release()
	clear(s.data)
}

// Values returns a snapshot of the elements in ascending order.
func (s *SortedSet[T]) Values() []T {
	return s.Copy()
}
