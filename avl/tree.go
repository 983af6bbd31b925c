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
	"cmp"
	"iter"
)

// DuplicatePolicy decides what Insert does with a key already present.
type DuplicatePolicy int

const (
	// DuplicatesRight stores the key again, in the right subtree of its twin.
	DuplicatesRight DuplicatePolicy = iota
	// DuplicatesReject leaves the tree untouched and Insert returns false.
	DuplicatesReject
)

// Option configures a Tree.
type Option func(*options)

type options struct {
	duplicates DuplicatePolicy
}

// WithDuplicates selects the duplicate key policy.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(o *options) {
		o.duplicates = p
	}
}

// Tree holds the root of a balanced tree ordered by compare.
type Tree[K any] struct {
	root    *Node[K]
	count   int
	compare func(a, b K) int
	opts    options
}

// New creates an empty tree. compare must define a total order and return
// a negative number, zero or a positive number like cmp.Compare.
func New[K any](compare func(a, b K) int, opts ...Option) *Tree[K] {
	if compare == nil {
		violate("New", "nil compare function")
	}
	t := &Tree[K]{compare: compare}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// NewOrdered creates an empty tree for any naturally ordered key type.
func NewOrdered[K cmp.Ordered](opts ...Option) *Tree[K] {
	return New(cmp.Compare[K], opts...)
}

// Insert adds key and rebalances. It returns false only when the tree
// rejects duplicates and key is already present.
func (t *Tree[K]) Insert(key K) bool {
	_, added := t.InsertTrace(key)
	return added
}

// InsertTrace is Insert, additionally reporting the rotation performed.
func (t *Tree[K]) InsertTrace(key K) (Rebalance[K], bool) {
	ins := inserter[K]{
		compare: t.compare,
		reject:  t.opts.duplicates == DuplicatesReject,
	}
	t.root = ins.insert(t.root, key)
	if ins.added {
		t.count++
	}
	return ins.result, ins.added
}

// Height returns the height of the whole tree, 0 when empty.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Len returns the number of keys stored.
func (t *Tree[K]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node for inspection; nil when empty.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Contains reports whether an equal key is stored.
func (t *Tree[K]) Contains(key K) bool {
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// First returns the lowest key.
func (t *Tree[K]) First() (K, bool) {
	var zero K
	n := t.root
	if n == nil {
		return zero, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Last returns the highest key.
func (t *Tree[K]) Last() (K, bool) {
	var zero K
	n := t.root
	if n == nil {
		return zero, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

// All yields the keys in ascending order. Ranging over it again restarts
// the traversal from the lowest key.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		// explicit stack, depth is bounded by the tree height
		stack := make([]*Node[K], 0, t.Height())
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key) {
				return
			}
			n = n.right
		}
	}
}

// InOrder returns all keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.count)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}
