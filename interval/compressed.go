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
)

// CompressedIndexSet maps 2^level consecutive indices onto a single tracked
// bit, trading exactness for memory: a set over a range of n indices allocates
// n/(64*2^level) words. Queries return bucket boundaries, so results are
// correct only to within 2^level and the caller re-verifies against a small
// window.
//
// Two write modes are provided with different guarantees:
//   - Set marks the bucket containing one index. Contains then over-approximates
//     membership (anything in a marked bucket reports true).
//   - SetCoveredRange marks only buckets entirely inside a range. Contains then
//     under-approximates: a true result proves every index of the bucket was
//     covered. This is the mode used for tracking resolved ranges, where a
//     false positive would be unsound but a miss only costs rework.
//
// A single set must stick to one mode.
type CompressedIndexSet struct {
	set   *BitIndexSet
	level uint
	left  int
	right int
}

// MaxCompressionLevel bounds the bucket width to 2^30 indices.
const MaxCompressionLevel = 30

// NewCompressedIndexSet creates an empty compressed set over [left, right]
// with 2^level indices per bucket.
func NewCompressedIndexSet(level int, left, right int) (*CompressedIndexSet, error) {
	if level < 1 || level > MaxCompressionLevel {
		return nil, fmt.Errorf("compression level must be in [1, %d]: %d", MaxCompressionLevel, level)
	}
	if left < 0 || right < left {
		return nil, fmt.Errorf("invalid index range [%d, %d]", left, right)
	}
	set, err := NewBitIndexSet(left>>level, right>>level)
	if err != nil {
		return nil, err
	}
	return &CompressedIndexSet{set: set, level: uint(level), left: left, right: right}, nil
}

// Level returns the compression level.
func (s *CompressedIndexSet) Level() int {
	return int(s.level)
}

// Left returns the lowest representable index.
func (s *CompressedIndexSet) Left() int {
	return s.left
}

// Right returns the highest representable index.
func (s *CompressedIndexSet) Right() int {
	return s.right
}

// Set marks the bucket containing index i.
func (s *CompressedIndexSet) Set(i int) {
	s.set.Set(i >> s.level)
}

// SetCoveredRange marks the buckets lying entirely inside [from, to].
// Partially covered buckets at either end are left untouched.
func (s *CompressedIndexSet) SetCoveredRange(from, to int) {
	width := 1 << s.level
	b0 := (from + width - 1) >> s.level
	b1 := ((to + 1) >> s.level) - 1
	if b0 <= b1 {
		s.set.SetRange(b0, b1)
	}
}

// Contains reports whether the bucket holding index i is marked.
func (s *CompressedIndexSet) Contains(i int) bool {
	return s.set.Contains(i >> s.level)
}

// NextIndex returns the start of the first marked bucket at or after index k,
// clamped to [k's bucket start, Right()]; -1 when there is none. The true
// nearest member is at most 2^level-1 above the returned index.
func (s *CompressedIndexSet) NextIndex(k int) int {
	if k < s.left {
		k = s.left
	}
	b := s.set.NextSet(k >> s.level)
	if b == -1 {
		return -1
	}
	i := b << s.level
	if i < s.left {
		i = s.left
	}
	if i > s.right {
		return -1
	}
	return i
}

// PreviousIndex returns the end of the last marked bucket at or before index k,
// clamped to [Left(), k]; -1 when there is none. The true nearest member is at
// most 2^level-1 below the returned index.
func (s *CompressedIndexSet) PreviousIndex(k int) int {
	if k > s.right {
		k = s.right
	}
	b := s.set.PreviousSet(k >> s.level)
	if b == -1 {
		return -1
	}
	i := (b+1)<<s.level - 1
	if i > k {
		i = k
	}
	if i > s.right {
		i = s.right
	}
	if i < s.left {
		return -1
	}
	return i
}

// CompressedIndexInterval is a SearchableInterval over a compressed index set.
// Queries return bounds correct to within 2^level rather than exact members:
// NextIndex never overshoots the true next member and PreviousIndex never
// undershoots the true previous one, so a caller re-verifying a small window
// stays correct. Preferred for huge dense target sets where an exact bitset
// would dominate memory.
type CompressedIndexInterval struct {
	set   *CompressedIndexSet
	left  int
	right int
}

// NewCompressedIndexInterval creates a compressed interval over the sorted
// distinct keys with 2^level indices per tracked bit.
func NewCompressedIndexInterval(keys []int, level int) (*CompressedIndexInterval, error) {
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
	set, err := NewCompressedIndexSet(level, keys[0], keys[len(keys)-1])
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		set.Set(k)
	}
	return &CompressedIndexInterval{set: set, left: keys[0], right: keys[len(keys)-1]}, nil
}

func (v *CompressedIndexInterval) Left() int {
	return v.left
}

func (v *CompressedIndexInterval) Right() int {
	return v.right
}

// NextIndex returns a position in [k, m] where m is the smallest member >= k,
// or Right()+1 when there is none.
func (v *CompressedIndexInterval) NextIndex(k int) int {
	if k <= v.left {
		return v.left
	}
	i := v.set.NextIndex(k)
	if i == -1 || i > v.right {
		return v.right + 1
	}
	if i < k {
		// k itself sits in a marked bucket.
		return k
	}
	return i
}

// PreviousIndex returns a position in [m, k] where m is the largest member
// <= k, or Left()-1 when there is none.
func (v *CompressedIndexInterval) PreviousIndex(k int) int {
	if k >= v.right {
		return v.right
	}
	i := v.set.PreviousIndex(k)
	if i == -1 || i < v.left {
		return v.left - 1
	}
	return i
}

func (v *CompressedIndexInterval) Split(ka, kb int) (int, int) {
	upper := v.PreviousIndex(ka - 1)
	lower := v.set.NextIndex(kb + 1)
	if lower != -1 && lower <= kb {
		// kb+1 shares a bucket with members at or below kb.
		lower = kb + 1
	}
	if lower == -1 || lower > v.right {
		v.left = v.right + 1
	} else {
		v.left = lower
	}
	if v.left > v.right {
		return upper, v.right + 1
	}
	return upper, v.left
}
