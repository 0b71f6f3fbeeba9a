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

import (
	"github.com/orderstat/selection-go/internal"
	"github.com/orderstat/selection-go/interval"
)

// resolvedTracker records positions known to hold their final rank value
// within one multi-target call, so later targets reuse the partition
// boundaries discovered for earlier ones.
type resolvedTracker interface {
	// contains reports whether position k is known resolved.
	contains(k int) bool
	// previous returns a resolved position <= k, or -1. When contains(k) is
	// false the result is strictly below k.
	previous(k int) int
	// next returns a resolved position >= k, or the array length. When
	// contains(k) is false the result is strictly above k.
	next(k int) int
	// fill marks the fully resolved range [lo, hi].
	fill(lo, hi int)
}

// Arrays below this length get an exact bit per position; above it the tracker
// is compressed to a bounded number of buckets.
const (
	compressedTrackerMinLength = 1 << 20
	compressedTrackerBuckets   = 1 << 16
)

type exactTracker struct {
	set    *interval.BitIndexSet
	length int
}

func (t *exactTracker) contains(k int) bool {
	return t.set.Contains(k)
}

func (t *exactTracker) previous(k int) int {
	return t.set.PreviousSet(k)
}

func (t *exactTracker) next(k int) int {
	if v := t.set.NextSet(k); v != -1 {
		return v
	}
	return t.length
}

func (t *exactTracker) fill(lo, hi int) {
	t.set.SetRange(lo, hi)
}

// compressedTracker under-approximates: a bucket is marked only when a
// resolved range covers it entirely, so contains never reports an unresolved
// position and the bounds it returns are merely wider than the exact ones.
type compressedTracker struct {
	set    *interval.CompressedIndexSet
	length int
}

func (t *compressedTracker) contains(k int) bool {
	return t.set.Contains(k)
}

func (t *compressedTracker) previous(k int) int {
	return t.set.PreviousIndex(k)
}

func (t *compressedTracker) next(k int) int {
	if v := t.set.NextIndex(k); v != -1 {
		return v
	}
	return t.length
}

func (t *compressedTracker) fill(lo, hi int) {
	t.set.SetCoveredRange(lo, hi)
}

// newResolvedTracker sizes a tracker for an array of the given length.
func newResolvedTracker(length int) resolvedTracker {
	if length < compressedTrackerMinLength {
		set, err := interval.NewBitIndexSet(0, length-1)
		if err != nil {
			panic(err)
		}
		return &exactTracker{set: set, length: length}
	}
	level, _ := internal.ExactLog2(internal.CeilPowerOf2((length + compressedTrackerBuckets - 1) / compressedTrackerBuckets))
	set, err := interval.NewCompressedIndexSet(level, 0, length-1)
	if err != nil {
		panic(err)
	}
	return &compressedTracker{set: set, length: length}
}
