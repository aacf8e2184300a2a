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

import "errors"

// Container errors - none are retryable; they report the state the
// container was in at the instant the operation held its lock.
var (
	// ErrOutOfRange reports an index outside the container's bounds.
	ErrOutOfRange = errors.New("containers: index out of range")

	// ErrEmpty reports an element access on an empty container.
	ErrEmpty = errors.New("containers: container is empty")
)
