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

import "errors"

// Fault values for this layer. None of them is retryable: every lock
// acquisition either succeeds (immediately or after blocking/spinning) or
// is a programming error. Programming errors surface as panics carrying
// one of these sentinels, in the same spirit as the sync package's
// "unlock of unlocked mutex" panic, so tests can still assert on them
// with errors.Is.
var (
	// ErrInvalidPolicy reports a Policy value outside the defined set.
	ErrInvalidPolicy = errors.New("tsafe: invalid lock policy")

	// ErrWriteLockUnsupported reports a WriteLock call on a ReaderWriter
	// holder; writer-mode access under that policy goes through
	// RWWriteLock.
	ErrWriteLockUnsupported = errors.New("tsafe: WriteLock is not supported under the ReaderWriter policy; use RWWriteLock")

	// ErrReadLockUnsupported reports a ReadLock call on a holder whose
	// policy has no shared-lock concept.
	ErrReadLockUnsupported = errors.New("tsafe: ReadLock requires the ReaderWriter policy")

	// ErrRWWriteLockUnsupported reports an RWWriteLock call on a holder
	// whose policy is not ReaderWriter.
	ErrRWWriteLockUnsupported = errors.New("tsafe: RWWriteLock requires the ReaderWriter policy")
)
