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
	"container/list"
	"iter"

	tsafe "github.com/tsafe-project/go-tsafe"
)

// List is a thread-safe doubly linked list backed by container/list.
// Element access at the ends is O(1); Remove scans from the front for the
// first equal value.
type List[T comparable] struct {
	tsafe.Protected[T]
	data *list.List
}

// NewList creates an empty list protected by the configured policy.
// A nil config selects the default (Exclusive).
func NewList[T comparable](cfg *Config) *List[T] {
	l := &List[T]{data: list.New()}
	l.Protected = tsafe.NewProtected[T](l, policyOf(cfg))
	return l
}

// UnsafeValues iterates the elements front to back with no locking.
func (l *List[T]) UnsafeValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.data.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}

// UnsafeLen returns the element count with no locking.
func (l *List[T]) UnsafeLen() int {
	return l.data.Len()
}

// UnsafeRef returns the backing list with no locking. Callers must hold a
// guard or synchronize externally.
func (l *List[T]) UnsafeRef() *list.List {
	return l.data
}

// PushFront adds a value at the front.
func (l *List[T]) PushFront(value T) {
	g := l.AcquireWriteLock()
	defer g.Release()
	l.data.PushFront(value)
}

// PushBack adds a value at the back.
func (l *List[T]) PushBack(value T) {
	g := l.AcquireWriteLock()
	defer g.Release()
	l.data.PushBack(value)
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) {
	g := l.AcquireWriteLock()
	defer g.Release()
	e := l.data.Front()
	if e == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.data.Remove(e).(T), nil
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, error) {
	g := l.AcquireWriteLock()
	defer g.Release()
	e := l.data.Back()
	if e == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.data.Remove(e).(T), nil
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (T, error) {
	g := l.AcquireReadLock()
	defer g.Release()
	e := l.data.Front()
	if e == nil {
		var zero T
		return zero, ErrEmpty
	}
	return e.Value.(T), nil
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (T, error) {
	g := l.AcquireReadLock()
	defer g.Release()
	e := l.data.Back()
	if e == nil {
		var zero T
		return zero, ErrEmpty
	}
	return e.Value.(T), nil
}

// Remove deletes the first element equal to value and reports whether one
// was found.
func (l *List[T]) Remove(value T) bool {
	g := l.AcquireWriteLock()
	defer g.Release()
	for e := l.data.Front(); e != nil; e = e.Next() {
		if e.Value.(T) == value {
			l.data.Remove(e)
			return true
		}
	}
	return false
}

// Len returns the element count.
func (l *List[T]) Len() int {
	g := l.AcquireReadLock()
	defer g.Release()
	return l.data.Len()
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	g := l.AcquireReadLock()
	defer g.Release()
	return l.data.Len() == 0
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	g := l.AcquireWriteLock()
	defer g.Release()
	l.data.Init()
}

// Values returns a snapshot of the elements front to back.
func (l *List[T]) Values() []T {
	return l.Copy()
}
