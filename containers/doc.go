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

// Package containers provides thread-safe container adapters built on the
// tsafe synchronization core: a dynamic array (Slice), a doubly linked
// list (List), a double-ended queue (Deque), hash and sorted maps, and
// hash and sorted sets.
//
// Every adapter embeds tsafe.Protected and brackets each operation with
// the policy-appropriate lock: mutating operations take the write path,
// read-only operations take the read path. The locking strategy is chosen
// per instance through Config and never changes afterwards:
//
//	s := containers.NewSlice[int](&containers.Config{Policy: tsafe.ReaderWriter})
//	s.Append(42)
//	n := s.Count(42) // read-locked, concurrent with other readers
//
// The adapters also inherit the mixin's batch helpers (WithWriteLock,
// WithReadLock) and Unsafe* escape hatches; see the tsafe package
// documentation for their contracts.
package containers
