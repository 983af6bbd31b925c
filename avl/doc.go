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

// Package avl implements a height-balanced binary search tree.
//
// Every node caches the height of its subtree. After each insertion the
// heights along the insertion path are recomputed on the way back up and
// the lowest unbalanced ancestor is repaired with a single or double
// rotation, so for every node the heights of the two subtrees differ by
// at most one.
//
// Keys that compare equal are routed to the right subtree unless the tree
// is created with WithDuplicates(DuplicatesReject).
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard every call with a mutex.
package avl
