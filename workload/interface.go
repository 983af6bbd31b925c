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

import "errors"

// ErrUnknownWorkload is returned by Manager.Get for an unregistered name.
var ErrUnknownWorkload = errors.New("unknown workload")

// Generator produces an insertion order for n integer keys.
type Generator interface {
	Name() string
	Description() string
	// Keys returns n keys. Generators that are not random ignore seed.
	Keys(n int, seed int64) []int
}
