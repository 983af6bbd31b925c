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

// ZigZag alternates between the smallest and largest remaining key:
// 0, n-1, 1, n-2, ...
type ZigZag struct{}

func (ZigZag) Name() string        { return "zigzag" }
func (ZigZag) Description() string { return "alternating low and high keys" }

func (ZigZag) Keys(n int, _ int64) []int {
	keys := make([]int, 0, n)
	lo, hi := 0, n-1
	for lo <= hi {
		keys = append(keys, lo)
		lo++
		if lo <= hi {
			keys = append(keys, hi)
			hi--
		}
	}
	return keys
}

// OrganPipe inserts the even keys ascending, then the odd keys descending.
type OrganPipe struct{}

func (OrganPipe) Name() string        { return "organpipe" }
func (OrganPipe) Description() string { return "evens rising, then odds falling" }

func (OrganPipe) Keys(n int, _ int64) []int {
	keys := make([]int, 0, n)
	for i := 0; i < n; i += 2 {
		keys = append(keys, i)
	}
	start := n - 1
	if start%2 == 0 {
		start--
	}
	for i := start; i > 0; i -= 2 {
		keys = append(keys, i)
	}
	return keys
}
