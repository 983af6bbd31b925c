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
package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/cybrota/avlkit/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// ErrInvalidKey is returned when a key cannot be parsed as the configured type.
var ErrInvalidKey = errors.New("invalid key")

// Outcome is the result of inserting one key.
type Outcome struct {
	Key   string
	Added bool
	Case  avl.Case
	Pivot string
}

// Stats summarises the current tree.
type Stats struct {
	Count     int
	Height    int
	Bound     float64 // largest height an AVL tree of Count keys may reach
	Rotations map[avl.Case]int
}

// KeyIndex is a tree of typed keys addressed by their text form. The key
// type is chosen at runtime from the config.
type KeyIndex interface {
	Insert(text string) (Outcome, error)
	Contains(text string) (bool, error)
	Keys() []string
	Render() string
	Stats() Stats
	Validate() error
}

// treeIndex guards one avl.Tree with a RWMutex, remembers every key in a
// bloom filter so most misses skip the tree walk, and caches the rendered
// tree per revision.
type treeIndex[K any] struct {
	mu          sync.RWMutex
	tree        *avl.Tree[K]
	parse       func(string) (K, error)
	format      func(K) string
	filter      *bloom.BloomFilter
	renders     *cache.Cache
	revision    uint64
	showHeights bool
	rotations   map[avl.Case]int
}

// NewKeyIndex builds an empty index for the configured key type.
func NewKeyIndex(config *Config) (KeyIndex, error) {
	var opts []avl.Option
	if config.Tree.Duplicates == "reject" {
		opts = append(opts, avl.WithDuplicates(avl.DuplicatesReject))
	}

	switch config.Keys.Type {
	case "int":
		return newTreeIndex(config, avl.NewOrdered[int](opts...), parseIntKey, strconv.Itoa), nil
	case "string":
		return newTreeIndex(config, avl.NewOrdered[string](opts...), parseStringKey, func(s string) string { return s }), nil
	}
	return nil, fmt.Errorf("unsupported key type %q", config.Keys.Type)
}

func newTreeIndex[K any](config *Config, tree *avl.Tree[K], parse func(string) (K, error), format func(K) string) *treeIndex[K] {
	return &treeIndex[K]{
		tree:        tree,
		parse:       parse,
		format:      format,
		filter:      bloom.New(config.Membership.BloomSize, config.Membership.BloomHashes),
		renders:     NewRenderCache(config.Render.CacheTTL),
		showHeights: config.Tree.ShowHeights,
		rotations:   make(map[avl.Case]int),
	}
}

func parseIntKey(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidKey, text)
	}
	return n, nil
}

func parseStringKey(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: empty string", ErrInvalidKey)
	}
	return text, nil
}

func (ix *treeIndex[K]) Insert(text string) (Outcome, error) {
	key, err := ix.parse(text)
	if err != nil {
		return Outcome{}, err
	}
	canonical := ix.format(key)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	rb, added := ix.tree.InsertTrace(key)
	out := Outcome{Key: canonical, Added: added, Case: rb.Case}
	if !added {
		return out, nil
	}

	ix.filter.AddString(canonical)
	DropRenderedTree(ix.renders, renderCacheKey(ix.revision, ix.showHeights))
	ix.revision++
	if rb.Rotated() {
		out.Pivot = ix.format(rb.Pivot)
		ix.rotations[rb.Case]++
	}
	return out, nil
}

func (ix *treeIndex[K]) Contains(text string) (bool, error) {
	key, err := ix.parse(text)
	if err != nil {
		return false, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if !ix.filter.TestString(ix.format(key)) {
		return false, nil
	}
	return ix.tree.Contains(key), nil
}

func (ix *treeIndex[K]) Keys() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	keys := make([]string, 0, ix.tree.Len())
	for k := range ix.tree.All() {
		keys = append(keys, ix.format(k))
	}
	return keys
}

func (ix *treeIndex[K]) Render() string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	cacheKey := renderCacheKey(ix.revision, ix.showHeights)
	if page := GetRenderedTree(ix.renders, cacheKey); page != "" {
		return page
	}

	var sb strings.Builder
	ix.tree.Fprint(&sb, ix.showHeights)
	page := sb.String()
	if page == "" {
		page = "(empty tree)\n"
	}
	CacheRenderedTree(ix.renders, cacheKey, page)
	return page
}

func (ix *treeIndex[K]) Stats() Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	rotations := make(map[avl.Case]int, len(ix.rotations))
	for c, n := range ix.rotations {
		rotations[c] = n
	}
	return Stats{
		Count:     ix.tree.Len(),
		Height:    ix.tree.Height(),
		Bound:     heightBound(ix.tree.Len()),
		Rotations: rotations,
	}
}

func (ix *treeIndex[K]) Validate() error {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.tree.Validate()
}

// heightBound is the AVL limit 1.44*log2(n+2) on the height of a tree
// holding n keys, counting a single leaf as height 1.
func heightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n+2))
}

// insertTokens inserts every token in order and stops at the first bad key.
func insertTokens(ix KeyIndex, tokens []keyToken) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(tokens))
	for _, tok := range tokens {
		out, err := ix.Insert(tok.Text)
		if err != nil {
			return outcomes, fmt.Errorf("%s: %w", tok.Source, err)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
