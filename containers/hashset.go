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
	"iter"

	tsafe "github.com/tsafe-project/go-tsafe"
)

// HashSet is a thread-safe set with unordered iteration. Has is an O(1)
// read-locked lookup; the inherited Contains helper answers the same
// question by scanning and exists only for interface parity with the
// other adapters.
type HashSet[T comparable] struct {
	tsafe.Protected[T]
	data map[T]struct{}
}

// NewHashSet creates an empty set protected by the configured policy.
// A nil config selects the default (Exclusive).
func NewHashSet[T comparable](cfg *Config) *HashSet[T] {
	s := &HashSet[T]{data: make(map[T]struct{})}
	s.Protected = tsafe.NewProtected[T](s, policyOf(cfg))
	return s
}

// NewHashSetFrom creates a set seeded with the given values.
func NewHashSetFrom[T comparable](cfg *Config, values ...T) *HashSet[T] {
	s := NewHashSet[T](cfg)
	for _, v := range values {
		s.data[v] = struct{}{}
	}
	return s
}

// UnsafeValues iterates the elements in unspecified order with no locking.
func (s *HashSet[T]) UnsafeValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.data {
			if !yield(v) {
				return
			}
		}
	}
}

// UnsafeLen returns the element count with no locking.
func (s *HashSet[T]) UnsafeLen() int {
	return len(s.data)
}

// UnsafeRef returns the backing map with no locking. Callers must hold a
// guard or synchronize externally.
func (s *HashSet[T]) UnsafeRef() map[T]struct{} {
	return s.data
}

// Add inserts value and reports whether it was absent before.
func (s *HashSet[T]) Add(value T) bool {
	g := s.AcquireWriteLock()
	defer g.Release()
	if _, ok := s.data[value]; ok {
		return false
	}
	s.data[value] = struct{}{}
	return true
}

// Delete removes value and reports whether it was present.
func (s *HashSet[T]) Delete(value T) bool {
	g := s.AcquireWriteLock()
	defer g.Release()
	if _, ok := s.data[value]; !ok {
		return false
	}
	delete(s.data, value)
	return true
}

// Has reports whether value is in the set.
func (s *HashSet[T]) Has(value T) bool {
	g := s.AcquireReadLock()
	defer g.Release()
	_, ok := s.data[value]
	return ok
}

// Len returns the element count.
func (s *HashSet[T]) Len() int {
	g := s.AcquireReadLock()
	defer g.Release()
	return len(s.data)
}

// Empty reports whether the set holds no elements.
func (s *HashSet[T]) Empty() bool {
	g := s.AcquireReadLock()
	defer g.Release()
	return len(s.data) == 0
}

// Clear removes all elements.
func (s *HashSet[T]) Clear() {
	g := s.AcquireWriteLock()
	defer g.Release()
	clear(s.data)
}

// Values returns a snapshot of the elements in unspecified order.
func (s *HashSet[T]) Values() []T {
	return s.Copy()
}
