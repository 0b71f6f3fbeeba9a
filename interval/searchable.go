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

package interval

import (
	"fmt"

	"github.com/orderstat/selection-go/internal"
)

// SearchableInterval is a view over a fixed sorted set of target indices that
// answers nearest-member queries and can be cut as targets are resolved in
// increasing order. Members are never added; Split only advances the lower
// bound.
type SearchableInterval interface {
	// Left returns the smallest remaining member.
	Left() int
	// Right returns the largest member.
	Right() int
	// NextIndex returns the smallest member >= k, or Right()+1 when none.
	NextIndex(k int) int
	// PreviousIndex returns the largest member <= k, or Left()-1 when none.
	PreviousIndex(k int) int
	// Split cuts the interval at [ka, kb]: it returns the largest member
	// strictly below ka (upper bound of the part cut off) and the smallest
	// member strictly above kb, which becomes the interval's new lower bound.
	// Sentinels are Left()-1 and Right()+1 as for the query methods.
	// Requires Left() <= ka <= kb; kb may exceed Right().
	Split(ka, kb int) (int, int)
}

func checkSearchableKeys(keys []int) error {
	if len(keys) == 0 {
		return fmt.Errorf("no target indices")
	}
	if keys[0] < 0 {
		return fmt.Errorf("negative target index: %d", keys[0])
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			return fmt.Errorf("target indices not sorted and distinct at position %d", i)
		}
	}
	return nil
}

// ScanningKeyInterval is a SearchableInterval over a sorted key array using
// linear scans. Preferred for a handful of targets, where the scan beats the
// constant factors of any search structure.
type ScanningKeyInterval struct {
	keys   []int
	lo, hi int
}

// NewScanningKeyInterval creates a linear-scan interval over the sorted
// distinct keys.
func NewScanningKeyInterval(keys []int) (*ScanningKeyInterval, error) {
	if err := checkSearchableKeys(keys); err != nil {
		return nil, err
	}
	return &ScanningKeyInterval{keys: keys, lo: 0, hi: len(keys) - 1}, nil
}

func (v *ScanningKeyInterval) Left() int {
	return v.keys[v.lo]
}

func (v *ScanningKeyInterval) Right() int {
	return v.keys[v.hi]
}

func (v *ScanningKeyInterval) NextIndex(k int) int {
	for i := v.lo; i <= v.hi; i++ {
		if v.keys[i] >= k {
			return v.keys[i]
		}
	}
	return v.keys[v.hi] + 1
}

func (v *ScanningKeyInterval) PreviousIndex(k int) int {
	for i := v.hi; i >= v.lo; i-- {
		if v.keys[i] <= k {
			return v.keys[i]
		}
	}
	return v.keys[v.lo] - 1
}

func (v *ScanningKeyInterval) Split(ka, kb int) (int, int) {
	upper := v.PreviousIndex(ka - 1)
	lower := v.NextIndex(kb + 1)
	for v.lo <= v.hi && v.keys[v.lo] <= kb {
		v.lo++
	}
	return upper, lower
}

// BinarySearchKeyInterval is a SearchableInterval over a sorted key array using
// binary search. Preferred for moderate target counts.
type BinarySearchKeyInterval struct {
	keys   []int
	lo, hi int
}

// NewBinarySearchKeyInterval creates a binary-search interval over the sorted
// distinct keys.
func NewBinarySearchKeyInterval(keys []int) (*BinarySearchKeyInterval, error) {
	if err := checkSearchableKeys(keys); err != nil {
		return nil, err
	}
	return &BinarySearchKeyInterval{keys: keys, lo: 0, hi: len(keys) - 1}, nil
}

func (v *BinarySearchKeyInterval) Left() int {
	return v.keys[v.lo]
}

func (v *BinarySearchKeyInterval) Right() int {
	return v.keys[v.hi]
}

func (v *BinarySearchKeyInterval) NextIndex(k int) int {
	i := internal.FindIndex(v.keys, v.lo, v.hi, k, internal.SearchGE)
	if i == -1 {
		return v.keys[v.hi] + 1
	}
	return v.keys[i]
}

func (v *BinarySearchKeyInterval) PreviousIndex(k int) int {
	i := internal.FindIndex(v.keys, v.lo, v.hi, k, internal.SearchLE)
	if i == -1 {
		return v.keys[v.lo] - 1
	}
	return v.keys[i]
}

func (v *BinarySearchKeyInterval) Split(ka, kb int) (int, int) {
	upper := v.PreviousIndex(ka - 1)
	lower := v.NextIndex(kb + 1)
	next := internal.FindIndex(v.keys, v.lo, v.hi, kb+1, internal.SearchGE)
	if next == -1 {
		v.lo = v.hi + 1
	} else {
		v.lo = next
	}
	return upper, lower
}

// BitIndexedInterval is a SearchableInterval over a bit-indexed set, preferred
// for dense target sets where per-key structures would dominate the cost.
type BitIndexedInterval struct {
	set   *BitIndexSet
	left  int
	right int
}

// NewBitIndexedInterval creates a bit-indexed interval over the sorted distinct
// keys.
func NewBitIndexedInterval(keys []int) (*BitIndexedInterval, error) {
	if err := checkSearchableKeys(keys); err != nil {
		return nil, err
	}
	set, err := NewBitIndexSetOf(keys)
	if err != nil {
		return nil, err
	}
	return &BitIndexedInterval{set: set, left: keys[0], right: keys[len(keys)-1]}, nil
}

func (v *BitIndexedInterval) Left() int {
	return v.left
}

func (v *BitIndexedInterval) Right() int {
	return v.right
}

func (v *BitIndexedInterval) NextIndex(k int) int {
	if k <= v.left {
		return v.left
	}
	i := v.set.NextSet(k)
	if i == -1 {
		return v.right + 1
	}
	return i
}

func (v *BitIndexedInterval) PreviousIndex(k int) int {
	if k >= v.right {
		return v.right
	}
	i := v.set.PreviousSet(k)
	// Bits below left belong to parts already cut off by Split.
	if i == -1 || i < v.left {
		return v.left - 1
	}
	return i
}

func (v *BitIndexedInterval) Split(ka, kb int) (int, int) {
	upper := v.PreviousIndex(ka - 1)
	lower := v.NextIndex(kb + 1)
	if lower > v.right {
		v.left = v.right + 1
	} else {
		v.left = lower
	}
	return upper, lower
}
