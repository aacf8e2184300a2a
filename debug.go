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
	"fmt"
	"os"
)

// debugEnabled controls whether debug logging is active. It is read once
// at init; nothing in this package logs on a lock acquisition fast path,
// only on cold paths such as holder construction.
var debugEnabled = false

func init() {
	if os.Getenv("TSAFE_DEBUG") != "" || os.Getenv("DEBUG") != "" {
		debugEnabled = true
	}
}

// Debugf prints debug information to stderr when debug mode is enabled
// via the TSAFE_DEBUG or DEBUG environment variable.
func Debugf(format string, args ...any) {
	if debugEnabled {
		_, _ = fmt.Fprintf(os.Stderr, "DEBUG: %s\n", fmt.Sprintf(format, args...))
	}
}

// Debugln prints debug information to stderr when debug mode is enabled
// via the TSAFE_DEBUG or DEBUG environment variable.
func Debugln(args ...any) {
	if debugEnabled {
		_, _ = fmt.Fprintf(os.Stderr, "DEBUG: %s\n", fmt.Sprint(args...))
	}
}
