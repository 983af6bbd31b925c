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
	"io"
	"strings"
)

// which side of its parent a printed node hangs from
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes the tree sideways to w: the root on the left, right
// subtrees above their parent and left subtrees below. With showHeights
// each key is followed by its cached height and balance factor. It
// returns the depth of the deepest node printed.
func (t *Tree[K]) Fprint(w io.Writer, showHeights bool) int {
	return printNode(w, t.root, "", rootBranch, showHeights)
}

// String renders the tree with heights.
func (t *Tree[K]) String() string {
	var sb strings.Builder
	t.Fprint(&sb, true)
	return sb.String()
}

func printNode[K any](w io.Writer, n *Node[K], prefix string, br branch, showHeights bool) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = printNode(w, n.right, prefix+pad, rightBranch, showHeights)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if showHeights {
		fmt.Fprintf(w, "%v h=%d %+d\n", n.key, n.height, balanceFactor(n))
	} else {
		fmt.Fprintf(w, "%v\n", n.key)
	}

	ld := 0
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = printNode(w, n.left, prefix+pad, leftBranch, showHeights)
	}

	return 1 + max(ld, rd)
}
