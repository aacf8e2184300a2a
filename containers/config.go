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

import tsafe "github.com/tsafe-project/go-tsafe"

// Config contains construction options shared by all container adapters.
type Config struct {
	// Policy selects the locking strategy protecting the container.
	Policy tsafe.Policy
}

// DefaultConfig returns the default container configuration: the
// Exclusive policy, which is correct for every workload even when it is
// not the fastest.
func DefaultConfig() *Config {
	return &Config{Policy: tsafe.Exclusive}
}

// policyOf resolves a possibly-nil config to its policy.
func policyOf(cfg *Config) tsafe.Policy {
	if cfg == nil {
		return DefaultConfig().Policy
	}
	return cfg.Policy
}
