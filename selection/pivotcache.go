/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package selection

import "fmt"

// PivotCache remembers pivot positions resolved by earlier selection calls on
// the same array, arranged as a complete binary tree over the rank space.
// A position once resolved stays resolved, since selection only permutes
// elements within partition boundaries, so later calls can start from the
// cached enclosing range instead of the full array.
//
// The cache is tied to one array's layout. It must not be shared across
// threads or reused for a different array.
type PivotCache struct {
	length int
	nodes  []int
}

// MaxPivotCacheDepth bounds the tree to 2^20-1 cached positions.
const MaxPivotCacheDepth = 20

// NewPivotCache creates a cache of the given tree depth for arrays of the
// given length.
func NewPivotCache(depth, length int) (*PivotCache, error) {
	if depth < 1 || depth > MaxPivotCacheDepth {
		return nil, fmt.Errorf("cache depth must be in [1, %d]: %d", MaxPivotCacheDepth, depth)
	}
	if length < 1 {
		return nil, fmt.Errorf("length must be strictly positive: %d", length)
	}
	nodes := make([]int, (1<<depth)-1)
	for i := range nodes {
		nodes[i] = -1
	}
	return &PivotCache{length: length, nodes: nodes}, nil
}

// Length returns the array length the cache is bound to.
func (c *PivotCache) Length() int {
	return c.length
}

// Bounds returns the narrowest cached range [lo, hi] known to enclose rank k.
// A cached entry falling outside the bounds narrowed so far is stale and ends
// the walk; it is overwritten by a later Record on the same path.
func (c *PivotCache) Bounds(k int) (int, int) {
	lo, hi := 0, c.length-1
	node := 0
	for node < len(c.nodes) {
		p := c.nodes[node]
		if p < lo || p > hi {
			break
		}
		if k == p {
			return p, p
		}
		if k < p {
			hi = p - 1
			node = 2*node + 1
		} else {
			lo = p + 1
			node = 2*node + 2
		}
	}
	return lo, hi
}

// Record stores a resolved pivot position in the first free (or stale) node on
// its path. Positions beyond the tree depth are dropped.
func (c *PivotCache) Record(p int) {
	if p < 0 || p >= c.length {
		return
	}
	lo, hi := 0, c.length-1
	node := 0
	for node < len(c.nodes) {
		q := c.nodes[node]
		if q < lo || q > hi {
			c.nodes[node] = p
			return
		}
		if p == q {
			return
		}
		if p < q {
			hi = q - 1
			node = 2*node + 1
		} else {
			lo = q + 1
			node = 2*node + 2
		}
	}
}
