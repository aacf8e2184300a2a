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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy Policy
		want   string
	}{
		{name: "Exclusive", policy: Exclusive, want: "exclusive"},
		{name: "Spin", policy: Spin, want: "spin"},
		{name: "ReaderWriter", policy: ReaderWriter, want: "readerwriter"},
		{name: "Unsynchronized", policy: Unsynchronized, want: "unsynchronized"},
		{name: "Out of range", policy: Policy(42), want: "Policy(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.policy.String())
		})
	}
}

func TestPolicy_Valid(t *testing.T) {
	t.Parallel()

	for _, p := range []Policy{Exclusive, Spin, ReaderWriter, Unsynchronized} {
		assert.True(t, p.Valid(), "policy %s", p)
	}
	assert.False(t, Policy(4).Valid())
	assert.False(t, Policy(255).Valid())
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	t.Run("Round trips every policy", func(t *testing.T) {
		t.Parallel()
		for _, p := range []Policy{Exclusive, Spin, ReaderWriter, Unsynchronized} {
			got, err := ParsePolicy(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	})

	t.Run("Rejects unknown names", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"", "mutex", "EXCLUSIVE", "lockfree"} {
			_, err := ParsePolicy(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
		}
	})
}
