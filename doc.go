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

// Package tsafe turns an arbitrary sequential container into a
// thread-safe proxy by selecting one of several locking strategies per
// container instance: an exclusive mutex, a busy-wait spin lock, a
// reader/writer lock, or no lock at all (caller-synchronized).
//
// The package provides the synchronization core only. Container adapters
// (see the containers subpackage) embed [Protected], which hands out
// policy-appropriate [Guard] values from the adapter's [Holder]; the
// adapter brackets each of its own container operations with
// AcquireWriteLock or AcquireReadLock and releases the guard on every
// exit path with defer.
//
// A minimal adapter looks like this:
//
//	type Counter struct {
//		tsafe.Protected[int]
//		hits []int
//	}
//
//	func NewCounter(policy tsafe.Policy) *Counter {
//		c := &Counter{}
//		c.Protected = tsafe.NewProtected[int](c, policy)
//		return c
//	}
//
//	func (c *Counter) UnsafeValues() iter.Seq[int] { return slices.Values(c.hits) }
//	func (c *Counter) UnsafeLen() int              { return len(c.hits) }
//
//	func (c *Counter) Record(n int) {
//		g := c.AcquireWriteLock()
//		defer g.Release()
//		c.hits = append(c.hits, n)
//	}
//
// Policy choice is a per-instance decision with no runtime
// reconfiguration: [Exclusive] is the safe default, [Spin] suits very
// short critical sections, [ReaderWriter] pays off on read-heavy
// workloads, and [Unsynchronized] removes locking entirely for callers
// that synchronize externally. Nothing in this layer can time out or be
// canceled; an acquisition blocks (or spins) until it succeeds.
package tsafe
