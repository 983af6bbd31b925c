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

// Case identifies which rotation, if any, an insertion needed.
type Case int

const (
	None Case = iota
	LeftLeft
	RightRight
	LeftRight
	RightLeft
)

func (c Case) String() string {
	switch c {
	case None:
		return "none"
	case LeftLeft:
		return "left-left"
	case RightRight:
		return "right-right"
	case LeftRight:
		return "left-right"
	case RightLeft:
		return "right-left"
	}
	return "unknown"
}

// Rebalance describes the repair performed by one insertion. Pivot is the
// key of the node that was found unbalanced; it is meaningless when Case
// is None.
type Rebalance[K any] struct {
	Case  Case
	Pivot K
}

// Rotated reports whether the insertion rotated any node.
func (r Rebalance[K]) Rotated() bool {
	return r.Case != None
}

// inserter carries the per-call state of one insertion down the recursion.
type inserter[K any] struct {
	compare func(a, b K) int
	reject  bool
	added   bool
	result  Rebalance[K]
}

// insert places key below n and returns the new root of the subtree.
func (ins *inserter[K]) insert(n *Node[K], key K) *Node[K] {
	if n == nil {
		ins.added = true
		return newLeaf(key)
	}

	c := ins.compare(key, n.key)
	switch {
	case c < 0:
		n.left = ins.insert(n.left, key)
	case c == 0 && ins.reject:
		return n
	default: // greater, or equal routed right
		n.right = ins.insert(n.right, key)
	}

	if !ins.added {
		return n
	}

	updateHeight(n)

	balance := balanceFactor(n)
	switch {
	case balance > 1 && ins.compare(key, n.left.key) < 0:
		ins.record(LeftLeft, n)
		return rotateRight(n)
	case balance < -1 && ins.compare(key, n.right.key) >= 0:
		// equal keys went right of n.right, so they land here too
		ins.record(RightRight, n)
		return rotateLeft(n)
	case balance > 1:
		ins.record(LeftRight, n)
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case balance < -1:
		ins.record(RightLeft, n)
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

func (ins *inserter[K]) record(c Case, n *Node[K]) {
	if ins.result.Case != None {
		violate("insert", "second rotation during a single insertion")
	}
	ins.result = Rebalance[K]{Case: c, Pivot: n.key}
}
