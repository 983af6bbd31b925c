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

// rotateRight lifts y.left into y's place and returns it as the new
// subtree root.
//
//	      y            x
//	     / \          / \
//	    x   C  ==>   A   y
//	   / \              / \
//	  A   B            B   C
func rotateRight[K any](y *Node[K]) *Node[K] {
	if y == nil {
		violate("rotateRight", "nil node")
	}
	if y.left == nil {
		violate("rotateRight", "node has no left child")
	}

	x := y.left
	y.left = x.right // B moves across
	x.right = y

	// y is now the child, so its height has to be settled first
	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft is the mirror image of rotateRight.
//
//	    x                y
//	   / \              / \
//	  A   y    ==>     x   C
//	     / \          / \
//	    B   C        A   B
func rotateLeft[K any](x *Node[K]) *Node[K] {
	if x == nil {
		violate("rotateLeft", "nil node")
	}
	if x.right == nil {
		violate("rotateLeft", "node has no right child")
	}

	y := x.right
	x.right = y.left
	y.left = x

	updateHeight(x)
	updateHeight(y)

	return y
}
