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
	"fmt"
)

// IsBalanced recomputes every subtree height from scratch and reports
// whether each node's subtrees differ in height by at most one. Cached
// heights are not consulted.
func (t *Tree[K]) IsBalanced() bool {
	_, ok := measureBalance(t.root)
	return ok
}

func measureBalance[K any](n *Node[K]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := measureBalance(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := measureBalance(n.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// Validate checks all tree invariants: in-order keys never decrease
// (strictly increase when duplicates are rejected), every cached height
// matches the recomputed one, and every node is balanced. The returned
// error wraps ErrOrdering, ErrHeightCache or ErrUnbalanced.
func (t *Tree[K]) Validate() error {
	if err := t.checkOrder(); err != nil {
		return err
	}
	if _, err := checkHeights(t.root); err != nil {
		return err
	}
	return nil
}

func (t *Tree[K]) checkOrder() error {
	strict := t.opts.duplicates == DuplicatesReject
	first := true
	var prev K
	for k := range t.All() {
		if !first {
			c := t.compare(prev, k)
			if c > 0 || (strict && c == 0) {
				return fmt.Errorf("%w: %v before %v", ErrOrdering, prev, k)
			}
		}
		prev = k
		first = false
	}
	return nil
}

// checkHeights returns the recomputed height of n.
func checkHeights[K any](n *Node[K]) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := checkHeights(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkHeights(n.right)
	if err != nil {
		return 0, err
	}
	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("%w: node %v caches %d, actual %d", ErrHeightCache, n.key, n.height, h)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, fmt.Errorf("%w: node %v has left %d, right %d", ErrUnbalanced, n.key, lh, rh)
	}
	return h, nil
}
