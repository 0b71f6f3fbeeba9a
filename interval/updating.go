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

// UpdatingInterval is a shrinkable working set of unresolved target indices.
// It drives divide-and-conquer partitioning of many targets at once: each
// partition step resolves the members inside the pivot run and splits the rest
// into a below part and an above part.
type UpdatingInterval interface {
	// Left returns the smallest member. Undefined when Empty.
	Left() int
	// Right returns the largest member. Undefined when Empty.
	Right() int
	// Empty reports whether the interval has no members left.
	Empty() bool
	// SplitLeft removes the members strictly below ka and returns them as a new
	// interval (nil when there are none). Members in [ka, kb] are discarded and
	// the receiver keeps only the members strictly above kb.
	// Requires ka <= kb.
	SplitLeft(ka, kb int) UpdatingInterval
}

// When the average gap between targets drops below a word of bits, a bitset
// walk beats maintaining key array cursors.
const updatingBitSetGap = 64

// NewUpdatingInterval creates an interval over the given target indices.
// keys must be non-empty, sorted ascending, distinct and non-negative.
// The representation is chosen from the target density: a sorted key array with
// cursors for sparse sets, a bit-indexed set for dense ones.
func NewUpdatingInterval(keys []int) (UpdatingInterval, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no target indices")
	}
	if keys[0] < 0 {
		return nil, fmt.Errorf("negative target index: %d", keys[0])
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			return nil, fmt.Errorf("target indices not sorted and distinct at position %d", i)
		}
	}
	span := keys[len(keys)-1] - keys[0] + 1
	if len(keys)*updatingBitSetGap >= span {
		set, err := NewBitIndexSetOf(keys)
		if err != nil {
			return nil, err
		}
		return &BitSetUpdatingInterval{set: set, left: keys[0], right: keys[len(keys)-1]}, nil
	}
	return &KeyUpdatingInterval{keys: keys, lo: 0, hi: len(keys) - 1}, nil
}

// KeyUpdatingInterval is an UpdatingInterval over a sorted key array, tracking
// the active window with two cursors. Splits binary-search the window.
type KeyUpdatingInterval struct {
	keys   []int
	lo, hi int
}

func (v *KeyUpdatingInterval) Left() int {
	return v.keys[v.lo]
}

func (v *KeyUpdatingInterval) Right() int {
	return v.keys[v.hi]
}

func (v *KeyUpdatingInterval) Empty() bool {
	return v.lo > v.hi
}

func (v *KeyUpdatingInterval) SplitLeft(ka, kb int) UpdatingInterval {
	split := internal.FindIndex(v.keys, v.lo, v.hi, ka, internal.SearchGE)
	var left UpdatingInterval
	if split == -1 {
		// Every member is below ka.
		left = &KeyUpdatingInterval{keys: v.keys, lo: v.lo, hi: v.hi}
		v.lo = v.hi + 1
		return left
	}
	if split > v.lo {
		left = &KeyUpdatingInterval{keys: v.keys, lo: v.lo, hi: split - 1}
	}
	next := internal.FindIndex(v.keys, split, v.hi, kb+1, internal.SearchGE)
	if next == -1 {
		v.lo = v.hi + 1
	} else {
		v.lo = next
	}
	return left
}

// BitSetUpdatingInterval is an UpdatingInterval over a bit-indexed set.
// Intervals produced by SplitLeft share the underlying set; the windows they
// cover are disjoint and membership is never mutated, only the cursors move.
type BitSetUpdatingInterval struct {
	set   *BitIndexSet
	left  int
	right int
}

func (v *BitSetUpdatingInterval) Left() int {
	return v.left
}

func (v *BitSetUpdatingInterval) Right() int {
	return v.right
}

func (v *BitSetUpdatingInterval) Empty() bool {
	return v.left > v.right
}

func (v *BitSetUpdatingInterval) SplitLeft(ka, kb int) UpdatingInterval {
	var left UpdatingInterval
	if ka > v.left {
		upper := v.set.PreviousSet(ka - 1)
		if upper >= v.left {
			left = &BitSetUpdatingInterval{set: v.set, left: v.left, right: upper}
		}
	}
	next := v.set.NextSet(kb + 1)
	if next == -1 || next > v.right {
		v.left = v.right + 1
	} else {
		v.left = next
	}
	return left
}
