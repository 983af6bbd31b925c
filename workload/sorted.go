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

// Ascending inserts 0, 1, ..., n-1.
type Ascending struct{}

func (Ascending) Name() string        { return "ascending" }
func (Ascending) Description() string { return "keys in increasing order" }

func (Ascending) Keys(n int, _ int64) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// Descending inserts n-1, n-2, ..., 0.
type Descending struct{}

func (Descending) Name() string        { return "descending" }
func (Descending) Description() string { return "keys in decreasing order" }

func (Descending) Keys(n int, _ int64) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = n - 1 - i
	}
	return keys
}
