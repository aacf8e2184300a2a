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
	"iter"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tsafe-project/go-tsafe/internal/locktest"
)

// intBox is the minimal adapter used to exercise the mixin in isolation:
// an int sequence whose only mutating operation is Append.
type intBox struct {
	Protected[int]
	data []int
}

func newIntBox(policy Policy, values ...int) *intBox {
	b := &intBox{data: values}
	b.Protected = NewProtected[int](b, policy)
	return b
}

func (b *intBox) UnsafeValues() iter.Seq[int] { return slices.Values(b.data) }
func (b *intBox) UnsafeLen() int              { return len(b.data) }

func (b *intBox) Append(v int) {
	g := b.AcquireWriteLock()
	defer g.Release()
	b.data = append(b.data, v)
}

// TestProtected_MutualExclusion runs 4 writers appending 250 distinct
// values each; with exclusion intact the final sequence has exactly 1000
// elements and every value appears exactly once.
func TestProtected_MutualExclusion(t *testing.T) {
	const (
		writers = 4
		perGoro = 250
	)

	for _, policy := range []Policy{Exclusive, Spin, ReaderWriter} {
		t.Run(policy.String(), func(t *testing.T) {
			b := newIntBox(policy)

			var wg sync.WaitGroup
			wg.Add(writers)
			for w := range writers {
				go func() {
					defer wg.Done()
					for i := range perGoro {
						b.Append(w*perGoro + i)
					}
				}()
			}
			wg.Wait()

			snapshot := b.Copy()
			require.Len(t, snapshot, writers*perGoro)

			seen := make(map[int]int, len(snapshot))
			for _, v := range snapshot {
				seen[v]++
			}
			for v := range writers * perGoro {
				assert.Equal(t, 1, seen[v], "value %d", v)
			}
			goleak.VerifyNone(t)
		})
	}
}

// TestProtected_ReaderWriterExclusivity keeps a census of live guards
// while readers and writers hammer the same resource: a live writer must
// never coexist with any other live holder.
func TestProtected_ReaderWriterExclusivity(t *testing.T) {
	const (
		readers    = 8
		writers    = 2
		iterations = 300
	)

	b := newIntBox(ReaderWriter, 1, 2, 3)
	var census locktest.Census
	var wg sync.WaitGroup

	wg.Add(readers + writers)
	for range readers {
		go func() {
			defer wg.Done()
			for range iterations {
				g := b.AcquireReadLock()
				census.EnterReader()
				_ = b.UnsafeLen()
				census.ExitReader()
				g.Release()
			}
		}()
	}
	for range writers {
		go func() {
			defer wg.Done()
			for range iterations {
				g := b.AcquireWriteLock()
				census.EnterWriter()
				b.data[0]++
				census.ExitWriter()
				g.Release()
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, census.Violations())
	goleak.VerifyNone(t)
}

// TestProtected_ReadLockIsExclusiveWithoutRW verifies that under policies
// with no shared-lock concept the read path degrades to full exclusion:
// treating every acquisition as a writer in the census must observe no
// overlap.
func TestProtected_ReadLockIsExclusiveWithoutRW(t *testing.T) {
	const (
		goroutines = 6
		iterations = 200
	)

	for _, policy := range []Policy{Exclusive, Spin} {
		t.Run(policy.String(), func(t *testing.T) {
			b := newIntBox(policy, 7)
			var census locktest.Census
			var wg sync.WaitGroup

			wg.Add(goroutines)
			for i := range goroutines {
				go func() {
					defer wg.Done()
					for range iterations {
						var g Guard
						if i%2 == 0 {
							g = b.AcquireReadLock()
						} else {
							g = b.AcquireWriteLock()
						}
						census.EnterWriter()
						_ = b.UnsafeLen()
						census.ExitWriter()
						g.Release()
					}
				}()
			}
			wg.Wait()

			assert.Zero(t, census.Violations())
		})
	}
}

func TestProtected_QueryHelpers(t *testing.T) {
	t.Parallel()

	b := newIntBox(Exclusive, 3, 1, 4, 1, 5, 9, 2, 6)

	t.Run("ForEach visits in order", func(t *testing.T) {
		t.Parallel()
		var got []int
		b.ForEach(func(v int) { got = append(got, v) })
		assert.Equal(t, []int{3, 1, 4, 1, 5, 9, 2, 6}, got)
	})

	t.Run("FindIf returns first match", func(t *testing.T) {
		t.Parallel()
		v, ok := b.FindIf(func(v int) bool { return v > 4 })
		require.True(t, ok)
		assert.Equal(t, 5, v)

		_, ok = b.FindIf(func(v int) bool { return v > 100 })
		assert.False(t, ok)
	})

	t.Run("Contains", func(t *testing.T) {
		t.Parallel()
		assert.True(t, b.Contains(9))
		assert.False(t, b.Contains(8))
	})

	t.Run("Count", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 2, b.Count(1))
		assert.Equal(t, 1, b.Count(6))
		assert.Zero(t, b.Count(42))
	})

	t.Run("Copy snapshots", func(t *testing.T) {
		t.Parallel()
		snap := b.Copy()
		assert.Equal(t, []int{3, 1, 4, 1, 5, 9, 2, 6}, snap)
		snap[0] = 100
		assert.True(t, b.Contains(3), "snapshot mutation must not reach the container")
	})
}

// TestProtected_ConcurrentReadHelpers runs the read-only helpers from many
// goroutines with no writer in flight; every result must match the
// unchanged snapshot.
func TestProtected_ConcurrentReadHelpers(t *testing.T) {
	const readers = 12

	b := newIntBox(ReaderWriter, 1, 2, 2, 3, 3, 3)
	var wg sync.WaitGroup

	wg.Add(readers)
	for range readers {
		go func() {
			defer wg.Done()
			for range 100 {
				assert.True(t, b.Contains(2))
				assert.Equal(t, 3, b.Count(3))
				assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, b.Copy())
			}
		}()
	}
	wg.Wait()
	goleak.VerifyNone(t)
}

func TestProtected_WithLockBatching(t *testing.T) {
	t.Parallel()

	b := newIntBox(Exclusive)

	b.WithWriteLock(func() {
		// Several raw operations under one acquisition.
		b.data = append(b.data, 1)
		b.data = append(b.data, 2)
		b.data = append(b.data, 3)
	})

	var total int
	b.WithReadLock(func() {
		for v := range b.UnsafeValues() {
			total += v
		}
	})
	assert.Equal(t, 6, total)
	assert.Equal(t, 3, b.UnsafeLen())
	assert.False(t, b.UnsafeEmpty())
}

func TestProtected_WithWriteLockReleasesOnPanic(t *testing.T) {
	t.Parallel()

	b := newIntBox(Exclusive)

	require.Panics(t, func() {
		b.WithWriteLock(func() { panic("boom") })
	})

	// The lock must be free again after the panic unwound.
	done := make(chan struct{})
	go func() {
		b.Append(1)
		close(done)
	}()
	<-done
	assert.Equal(t, 1, b.UnsafeLen())
}

func TestProtected_ManualGuards(t *testing.T) {
	t.Parallel()

	b := newIntBox(Exclusive)

	g := b.AcquireWriteGuard()
	b.data = append(b.data, 10, 20)
	g.Release()

	rg := b.AcquireReadGuard()
	assert.Equal(t, 2, b.UnsafeLen())
	rg.Release()

	assert.Equal(t, Exclusive, b.Policy())
	assert.NotNil(t, b.Holder())
}
