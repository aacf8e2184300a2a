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

// Entry is a key/value pair as seen by the mixin's element-wise helpers.
// Both sides must be comparable so that Contains and Count can use ==,
// the same requirement the element type of every other adapter carries.
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

// HashMap is a thread-safe hash map with unordered iteration.
type HashMap[K comparable, V comparable] struct {
	tsafe.Protected[Entry[K, V]]
	data map[K]V
}

// NewHashMap creates an empty map protected by the configured policy.
// A nil config selects the default (Exclusive).
func NewHashMap[K comparable, V comparable](cfg *Config) *HashMap[K, V] {
	m := &HashMap[K, V]{data: make(map[K]V)}
	m.Protected = tsafe.NewProtected[Entry[K, V]](m, policyOf(cfg))
	return m
}

// UnsafeValues iterates the entries in map order (unspecified) with no
// locking.
func (m *HashMap[K, V]) UnsafeValues() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range m.data {
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// UnsafeLen returns the entry count with no locking.
func (m *HashMap[K, V]) UnsafeLen() int {
	return len(m.data)
}

// UnsafeRef returns the backing map with no locking. Callers must hold a
// guard or synchronize externally.
func (m *HashMap[K, V]) UnsafeRef() map[K]V {
	return m.data
}

// Set stores value under key, replacing any previous value.
func (m *HashMap[K, V]) Set(key K, value V) {
	g := m.AcquireWriteLock()
	defer g.Release()
	m.data[key] = value
}

// SetIfAbsent stores value only when key has no entry yet and reports
// whether it stored.
func (m *HashMap[K, V]) SetIfAbsent(key K, value V) bool {
	g := m.AcquireWriteLock()
	defer g.Release()
	if _, ok := m.data[key]; ok {
		return false
	}
	m.data[key] = value
	return true
}

// Get returns the value stored under key.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	g := m.AcquireReadLock()
	defer g.Release()
	v, ok := m.data[key]
	return v, ok
}

// GetOr returns the value stored under key, or fallback when absent.
func (m *HashMap[K, V]) GetOr(key K, fallback V) V {
	g := m.AcquireReadLock()
	defer g.Release()
	if v, ok := m.data[key]; ok {
		return v
	}
	return fallback
}

// Delete removes the entry under key and reports whether one existed.
func (m *HashMap[K, V]) Delete(key K) bool {
	g := m.AcquireWriteLock()
	defer g.Release()
	if _, ok := m.data[key]; !ok {
		return false
	}
	delete(m.data, key)
	return true
}

// ContainsKey reports whether key has an entry.
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	g := m.AcquireReadLock()
	defer g.Release()
	_, ok := m.data[key]
	return ok
}

// Len returns the entry count.
func (m *HashMap[K, V]) Len() int {
	g := m.AcquireReadLock()
	defer g.Release()
	return len(m.data)
}

// Empty reports whether the map holds no entries.
func (m *HashMap[K, V]) Empty() bool {
	g := m.AcquireReadLock()
	defer g.Release()
	return len(m.data) == 0
}

// Clear removes all entries.
func (m *HashMap[K, V]) Clear() {
	g := m.AcquireWriteLock()
	defer g.Release()
	clear(m.data)
}

// Keys returns a snapshot of the keys in unspecified order.
func (m *HashMap[K, V]) Keys() []K {
	g := m.AcquireReadLock()
	defer g.Release()
	keys := make([]K, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// Entries returns a snapshot of all entries in unspecified order.
func (m *HashMap[K, V]) Entries() []Entry[K, V] {
	return m.Copy()
}
