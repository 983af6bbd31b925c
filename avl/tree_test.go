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
package avl_test

import (
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/workload"
)

type AVLTestCase struct {
	Name          string
	KeysToInsert  []int
	ExpectedRoot  int
	ExpectedLeft  int
	ExpectedRight int
	ExpectedCase  avl.Case // reported by the last insertion
	ExpectedPivot int
}

func TestRotationCases(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Right-Right single left rotation",
			KeysToInsert:  []int{10, 20, 30},
			ExpectedRoot:  20,
			ExpectedLeft:  10,
			ExpectedRight: 30,
			ExpectedCase:  avl.RightRight,
			ExpectedPivot: 10,
		},
		{
			Name:          "Left-Left single right rotation",
			KeysToInsert:  []int{30, 20, 10},
			ExpectedRoot:  20,
			ExpectedLeft:  10,
			ExpectedRight: 30,
			ExpectedCase:  avl.LeftLeft,
			ExpectedPivot: 30,
		},
		{
			Name:          "Left-Right double rotation",
			KeysToInsert:  []int{30, 10, 20},
			ExpectedRoot:  20,
			ExpectedLeft:  10,
			ExpectedRight: 30,
			ExpectedCase:  avl.LeftRight,
			ExpectedPivot: 30,
		},
		{
			Name:          "Right-Left double rotation",
			KeysToInsert:  []int{10, 30, 20},
			ExpectedRoot:  20,
			ExpectedLeft:  10,
			ExpectedRight: 30,
			ExpectedCase:  avl.RightLeft,
			ExpectedPivot: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avl.NewOrdered[int]()
			var last avl.Rebalance[int]
			for i, key := range tc.KeysToInsert {
				rb, added := tree.InsertTrace(key)
				if !added {
					t.Fatalf("Insert(%d) was not added", key)
				}
				if i < len(tc.KeysToInsert)-1 && rb.Rotated() {
					t.Fatalf("Insert(%d) rotated early: %v", key, rb.Case)
				}
				last = rb
			}

			if last.Case != tc.ExpectedCase || last.Pivot != tc.ExpectedPivot {
				t.Errorf("last rebalance = %v at %d; want %v at %d",
					last.Case, last.Pivot, tc.ExpectedCase, tc.ExpectedPivot)
			}

			root := tree.Root()
			if root.Key() != tc.ExpectedRoot {
				t.Errorf("root = %d; want %d", root.Key(), tc.ExpectedRoot)
			}
			if root.Left().Key() != tc.ExpectedLeft || root.Right().Key() != tc.ExpectedRight {
				t.Errorf("children = %d, %d; want %d, %d",
					root.Left().Key(), root.Right().Key(), tc.ExpectedLeft, tc.ExpectedRight)
			}
			if tree.Height() != 2 {
				t.Errorf("Height() = %d; want 2", tree.Height())
			}
			if err := tree.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestEmptyTree(t *testing.T) {
	tree := avl.NewOrdered[string]()

	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("new tree: empty=%v len=%d height=%d", tree.IsEmpty(), tree.Len(), tree.Height())
	}
	if tree.Root() != nil {
		t.Errorf("Root() of empty tree should be nil")
	}
	if tree.Contains("apple") {
		t.Errorf("empty tree contains apple")
	}
	if _, ok := tree.First(); ok {
		t.Errorf("First() on empty tree reported a key")
	}
	if _, ok := tree.Last(); ok {
		t.Errorf("Last() on empty tree reported a key")
	}
	if got := tree.InOrder(); len(got) != 0 {
		t.Errorf("InOrder() = %v; want empty", got)
	}
	if !tree.IsBalanced() || tree.Validate() != nil {
		t.Errorf("empty tree should validate")
	}
}

func TestStringKeys(t *testing.T) {
	tree := avl.NewOrdered[string]()
	for _, key := range []string{"dog", "cat", "elephant", "bird", "apple", "banana", "cherry"} {
		tree.Insert(key)
	}

	expected := []string{"apple", "banana", "bird", "cat", "cherry", "dog", "elephant"}
	if got := tree.InOrder(); !slices.Equal(got, expected) {
		t.Errorf("InOrder() = %v; want %v", got, expected)
	}
	if first, _ := tree.First(); first != "apple" {
		t.Errorf("First() = %q; want apple", first)
	}
	if last, _ := tree.Last(); last != "elephant" {
		t.Errorf("Last() = %q; want elephant", last)
	}
	if !tree.Contains("cherry") || tree.Contains("zebra") {
		t.Errorf("Contains gave wrong membership")
	}
}

func TestCustomCompare(t *testing.T) {
	// case-insensitive ordering
	tree := avl.New(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}, avl.WithDuplicates(avl.DuplicatesReject))

	tree.Insert("Banana")
	tree.Insert("apple")
	if tree.Insert("BANANA") {
		t.Errorf("Insert(BANANA) accepted a case-insensitive duplicate")
	}
	if !tree.Contains("APPLE") {
		t.Errorf("Contains(APPLE) = false")
	}
	if got := tree.InOrder(); !slices.Equal(got, []string{"apple", "Banana"}) {
		t.Errorf("InOrder() = %v", got)
	}
}

func TestNilCompareIsContractViolation(t *testing.T) {
	defer func() {
		if _, ok := recover().(*avl.ContractViolation); !ok {
			t.Errorf("New(nil) did not panic with *ContractViolation")
		}
	}()
	avl.New[int](nil)
}

func TestDuplicatesRouteRight(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for i := 0; i < 3; i++ {
		if !tree.Insert(5) {
			t.Fatalf("Insert(5) #%d rejected", i)
		}
	}

	if tree.Len() != 3 {
		t.Errorf("Len() = %d; want 3", tree.Len())
	}
	if got := tree.InOrder(); !slices.Equal(got, []int{5, 5, 5}) {
		t.Errorf("InOrder() = %v", got)
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDuplicateOfLeftChildIsLeftRight(t *testing.T) {
	tree := avl.NewOrdered[int]()
	tree.Insert(10)
	tree.Insert(5)

	rb, _ := tree.InsertTrace(5)

	if rb.Case != avl.LeftRight || rb.Pivot != 10 {
		t.Errorf("rebalance = %v at %d; want left-right at 10", rb.Case, rb.Pivot)
	}
	if got := tree.InOrder(); !slices.Equal(got, []int{5, 5, 10}) {
		t.Errorf("InOrder() = %v", got)
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDuplicatesReject(t *testing.T) {
	tree := avl.NewOrdered[int](avl.WithDuplicates(avl.DuplicatesReject))
	for _, key := range []int{4, 2, 6, 2, 4, 6} {
		tree.Insert(key)
	}

	if tree.Len() != 3 {
		t.Errorf("Len() = %d; want 3", tree.Len())
	}
	rb, added := tree.InsertTrace(2)
	if added || rb.Rotated() {
		t.Errorf("InsertTrace(2) = %v, %v; want none, false", rb.Case, added)
	}
	if tree.Height() != 2 {
		t.Errorf("Height() = %d; want 2", tree.Height())
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for k := range 20 {
		tree.Insert(k)
	}

	var seen []int
	for k := range tree.All() {
		if k == 3 {
			break
		}
		seen = append(seen, k)
	}
	if !slices.Equal(seen, []int{0, 1, 2}) {
		t.Errorf("early break saw %v", seen)
	}

	// a fresh range restarts from the lowest key
	for k := range tree.All() {
		if k != 0 {
			t.Errorf("restarted traversal began at %d", k)
		}
		break
	}
}

// Every invariant is checked after every single insertion.
func TestWorkloadInvariants(t *testing.T) {
	const n = 1000

	for _, g := range workload.NewManager().Generators() {
		t.Run(g.Name(), func(t *testing.T) {
			tree := avl.NewOrdered[int]()
			keys := g.Keys(n, 1)

			for i, key := range keys {
				tree.Insert(key)
				if !tree.IsBalanced() {
					t.Fatalf("unbalanced after inserting %d (#%d)", key, i)
				}
				if err := tree.Validate(); err != nil {
					t.Fatalf("after inserting %d (#%d): %v", key, i, err)
				}
				size := i + 1
				bound := 1.44*math.Log2(float64(size+2)) - 1
				if float64(tree.Height()-1) > bound {
					t.Fatalf("height %d after %d keys exceeds bound %.2f", tree.Height(), size, bound)
				}
			}

			if tree.Len() != n {
				t.Errorf("Len() = %d; want %d", tree.Len(), n)
			}
			got := tree.InOrder()
			if len(got) != n || !slices.IsSorted(got) {
				t.Errorf("in-order sequence not sorted or wrong length %d", len(got))
			}
			for _, key := range keys {
				if !tree.Contains(key) {
					t.Fatalf("Contains(%d) = false", key)
				}
			}
			if tree.Contains(n) || tree.Contains(-1) {
				t.Errorf("Contains reported a key never inserted")
			}
		})
	}
}

func TestRandomDuplicatesStayOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := avl.NewOrdered[int]()
	for i := 0; i < 2000; i++ {
		tree.Insert(rng.Intn(50))
		if err := tree.Validate(); err != nil {
			t.Fatalf("after %d inserts: %v", i+1, err)
		}
	}
	if !slices.IsSorted(tree.InOrder()) || tree.Len() != 2000 {
		t.Errorf("duplicate-heavy tree lost order or keys")
	}
}

// An insertion that rotates nothing only grows heights along its path,
// each by at most one.
func TestNoRotationHeightGrowth(t *testing.T) {
	tree := avl.NewOrdered[int]()
	keys := workload.Random{}.Keys(500, 3)

	for _, key := range keys {
		before := heights(tree.Root(), map[int]int{})
		rb, _ := tree.InsertTrace(key)
		if rb.Rotated() {
			continue
		}
		after := heights(tree.Root(), map[int]int{})
		for k, h := range before {
			if d := after[k] - h; d != 0 && d != 1 {
				t.Fatalf("inserting %d changed height of %d by %d", key, k, d)
			}
		}
		if after[key] != 1 {
			t.Fatalf("new key %d has height %d; want 1", key, after[key])
		}
	}
}

func heights(n *avl.Node[int], out map[int]int) map[int]int {
	if n == nil {
		return out
	}
	out[n.Key()] = n.Height()
	heights(n.Left(), out)
	return heights(n.Right(), out)
}

func TestRotationCountPerInsert(t *testing.T) {
	// at most one case per insertion; ascending input only needs single
	// left rotations
	tree := avl.NewOrdered[int]()
	rotations := 0
	keys := workload.Ascending{}.Keys(1023, 0)
	for _, key := range keys {
		rb, _ := tree.InsertTrace(key)
		if rb.Rotated() {
			if rb.Case != avl.RightRight {
				t.Fatalf("ascending insert of %d used %v", key, rb.Case)
			}
			rotations++
		}
	}
	if tree.Height() != 10 {
		t.Errorf("Height() = %d; want 10 for 1023 ascending keys", tree.Height())
	}
	if rotations == 0 {
		t.Errorf("no rotations recorded")
	}
}

func TestCaseString(t *testing.T) {
	names := map[avl.Case]string{
		avl.None:       "none",
		avl.LeftLeft:   "left-left",
		avl.RightRight: "right-right",
		avl.LeftRight:  "left-right",
		avl.RightLeft:  "right-left",
		avl.Case(42):   "unknown",
	}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("Case(%d).String() = %q; want %q", int(c), c.String(), want)
		}
	}
}
