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

package avl

import (
	"errors"
	"fmt"
)

// Invariant errors reported by Validate.
var (
	// ErrOrdering indicates that the in-order key sequence is out of order.
	ErrOrdering = errors.New("binary search ordering violated")

	// ErrHeightCache indicates that a cached height disagrees with the
	// height recomputed from the node's children.
	ErrHeightCache = errors.New("cached height is stale")

	// ErrUnbalanced indicates a node whose subtree heights differ by more
	// than one.
	ErrUnbalanced = errors.New("subtree heights differ by more than one")
)

// ContractViolation is the panic value raised when a caller breaks a
// precondition, such as rotating a node without the required child.
type ContractViolation struct {
	Op     string
	Reason string
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("avl: %s: %s", c.Op, c.Reason)
}

func violate(op, reason string) {
	panic(&ContractViolation{Op: op, Reason: reason})
}
