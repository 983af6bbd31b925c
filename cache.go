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
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered trees are cheap to rebuild, keep them briefly
	defaultRenderExpiration = 5 * time.Minute
	// Clean up expired entries every minute
	renderCacheCleanup = time.Minute
)

// NewRenderCache creates a cache for rendered tree text
func NewRenderCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		ttl = defaultRenderExpiration
	}
	return cache.New(ttl, renderCacheCleanup)
}

func renderCacheKey(revision uint64, showHeights bool) string {
	return fmt.Sprintf("tree:%d:%t", revision, showHeights)
}

func CacheRenderedTree(c *cache.Cache, key string, page string) {
	c.Set(key, page, cache.DefaultExpiration)
}

// DropRenderedTree forgets a rendering that can no longer be served
func DropRenderedTree(c *cache.Cache, key string) {
	c.Delete(key)
}

func GetRenderedTree(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}
