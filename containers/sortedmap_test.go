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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedMap_OrderedIteration(t *testing.T) {
	t.Parallel()

	m := NewSortedMap[string, int](nil)
	m.Set("cherry", 3)
	m.Set("apple", 1)
	m.Set("banana", 2)

	assert.Equal(t, []string{"apple", "banana", "cherry"}, m.Keys())

	want := []Entry[string, int]{
		{Key: "apple", Value: 1},
		{Key: "banana", Value: 2},
		{Key: "cherry", Value: 3},
	}
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedMap_PointOperations(t *testing.T) {
	t.Parallel()

	m := NewSortedMap[int, string](nil)
	assert.True(t, m.Empty())

	m.Set(2, "two")
	m.Set(1, "one")

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	assert.True(t, m.ContainsKey(2))
	assert.True(t, m.Delete(2))
	assert.False(t, m.Delete(2))
	assert.Equal(t, 1, m.Len())

	m.Clear()
	assert.True(t, m.Empty())
}

func TestSortedMap_MinMaxKey(t *testing.T) {
	t.Parallel()

	m := NewSortedMap[int, string](nil)

	_, err := m.MinKey()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = m.MaxKey()
	assert.ErrorIs(t, err, ErrEmpty)

	for _, k := range []int{5, 1, 9, 3} {
		m.Set(k, "v")
	}

	minKey, err := m.MinKey()
	require.NoError(t, err)
	assert.Equal(t, 1, minKey)

	maxKey, err := m.MaxKey()
	require.NoError(t, err)
	assert.Equal(t, 9, maxKey)
}

// TestSortedMap_SnapshotStability takes two snapshots with no writer in
// between; they must be identical even with ordered views computed on
// demand.
func TestSortedMap_SnapshotStability(t *testing.T) {
	t.Parallel()

	m := NewSortedMap[int, int](nil)
	for i := range 20 {
		m.Set(i, i*10)
	}

	first := m.Entries()
	second := m.Entries()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("snapshots differ (-first +second):\n%s", diff)
	}
}
