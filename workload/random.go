// Copyright 2025 Naren Yellavula
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
package workload

import "math/rand"

// Random inserts a seeded permutation of 0..n-1.
type Random struct{}

func (Random) Name() string        { return "random" }
func (Random) Description() string { return "seeded random permutation" }

func (Random) Keys(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}
