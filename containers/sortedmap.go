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

// SortedMap is a thread-safe map whose iteration, Keys, and Entries
// results are in ascending key order. The backing store is a hash map;
// ordered views sort the keys on demand, so iteration costs O(n log n)
// where the point lookups stay O(1). For read-mostly workloads that is
// cheaper than keeping a tree balanced on every write.
type SortedMap[K cmp.Ordered, V comparable] struct {
	tsafe.Protected[Entry[K, V]]
	data map[K]V
}

// NewSortedMap creates an empty sorted map protected by the configured
// policy. A nil config selects the default (Exclusive).
func NewSortedMap[K cmp.Ordered, V comparable](cfg *Config) *SortedMap[K, V] {
	m := &SortedMap[K, V]{data: make(map[K]V)}
	m.Protected = tsafe.NewProtected[Entry[K, V]](m, policyOf(cfg))
	return m
}

// UnsafeValues iterates the entries in ascending key order with no
// locking.
func (m *SortedMap[K, V]) UnsafeValues() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, k := range slices.Sorted(maps.Keys(m.data)) {
			if !yield(Entry[K, V]{Key: k, Value: m.data[k]}) {
				return
			}
		}
	}
}

// UnsafeLen returns the entry count with no locking.
func (m *SortedMap[K, V]) UnsafeLen() int {
	return len(m.data)
}

// UnsafeRef returns the backing map with no locking. Callers must hold a
// guard or synchronize externally.
func (m *SortedMap[K, V]) UnsafeRef() map[K]V {
	return m.data
}

// Set stores value under key, replacing any previous value.
func (m *SortedMap[K, V]) Set(key K, value V) {
	g := m.AcquireWriteLock()
	defer g.Release()
	m.data[key] = value
}

// Get returns the value stored under key.
func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	g := m.AcquireReadLock()
	defer g.Release()
	v, ok := m.data[key]
	return v, ok
}

// Delete removes the entry under key and reports whether one existed.
func (m *SortedMap[K, V]) Delete(key K) bool {
	g := m.AcquireWriteLock()
	defer g.Release()
	if _, ok := m.data[key]; !ok {
		return false
	}
	delete(m.data, key)
	return true
}

// ContainsKey reports whether key has an entry.
func (m *SortedMap[K, V]) ContainsKey(key K) bool {
	g := m.AcquireReadLock()
	defer g.Release()
	_, ok := m.data[key]
	return ok
}

// Len returns the entry count.
func (m *SortedMap[K, V]) Len() int {
	g := m.AcquireReadLock()
	defer g.Release()
	return len(m.data)
}

// Empty reports whether the map holds no entries.
func (m *SortedMap[K, V]) Empty() bool {
	g := m.AcquireReadLock()
	defer g.Release()
	return len(m.data) == 0
}

// Clear removes all entries.
func (m *SortedMap[K, V]) Clear() {
	g := m.AcquireWriteLock()
	defer g.Release()
	clear(m.data)
}

// MinKey returns the smallest key present.
func (m *SortedMap[K, V]) MinKey() (K, error) {
	g := m.AcquireReadLock()
	defer g.Release()
	if len(m.data) == 0 {
		var zero K
		return zero, ErrEmpty
	}
	return slices.Min(slices.Collect(maps.Keys(m.data))), nil
}

// MaxKey returns the largest key present.
func (m *SortedMap[K, V]) MaxKey() (K, error) {
	g := m.AcquireReadLock()
	defer g.Release()
	if len(m.data) == 0 {
		var zero K
		return zero, ErrEmpty
	}
	return slices.Max(slices.Collect(maps.Keys(m.data))), nil
}

// Keys returns a snapshot of the keys in ascending order.
func (m *SortedMap[K, V]) Keys() []K {
	g := m.AcquireReadLock()
	defer g.Release()
	return slices.Sorted(maps.Keys(m.data))
}

// Entries returns a snapshot of all entries in ascending key order.
func (m *SortedMap[K, V]) Entries() []Entry[K, V] {
	return m.Copy()
}
