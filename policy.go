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

import "fmt"

// Policy selects the synchronization strategy that protects a resource.
// It is fixed when the resource's Holder is created and never changes for
// the lifetime of that resource.
type Policy uint8

const (
	// Exclusive serializes all access through a mutex. The safe default.
	Exclusive Policy = iota

	// Spin serializes all access through a busy-wait lock. Only worth it
	// for very short critical sections with low contention; a spinning
	// goroutine burns CPU instead of parking.
	Spin

	// ReaderWriter allows any number of concurrent readers or exactly one
	// writer. Read-heavy workloads benefit; everything else pays the
	// bookkeeping cost for nothing.
	ReaderWriter

	// Unsynchronized performs no locking at all. This is not a lock-free
	// algorithm: concurrent use without external synchronization is a data
	// race. The caller owns the thread-safety guarantee.
	Unsynchronized
)

// policyNames indexes by Policy value.
var policyNames = [...]string{
	Exclusive:      "exclusive",
	Spin:           "spin",
	ReaderWriter:   "readerwriter",
	Unsynchronized: "unsynchronized",
}

// Valid reports whether p is one of the four defined policies.
func (p Policy) Valid() bool {
	return int(p) < len(policyNames)
}

// String returns the canonical lowercase name of the policy.
func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
	return policyNames[p]
}

// ParsePolicy converts a policy name (as produced by String) back to its
// Policy value. Returns ErrInvalidPolicy wrapped with the offending name
// when the name is not recognized.
func ParsePolicy(name string) (Policy, error) {
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
}
