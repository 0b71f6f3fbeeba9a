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
	"math/bits"

	"github.com/orderstat/selection-go/internal"
)

// BitIndexSet is a fixed-capacity set of int indices in [left, right] backed by
// an array of 64-bit words. Storage is offset to the word containing left, so a
// set over [1000000, 1000063] allocates a single word.
//
// All methods assume indices within [left, right]; scans clamp their argument
// to the bounds. The zero value is not usable, use NewBitIndexSet.
type BitIndexSet struct {
	words  []uint64
	offset int
	left   int
	right  int
}

// NewBitIndexSet creates an empty set able to hold indices in [left, right].
func NewBitIndexSet(left, right int) (*BitIndexSet, error) {
	if left < 0 || right < left {
		return nil, fmt.Errorf("invalid index range [%d, %d]", left, right)
	}
	offset := left &^ 63
	return &BitIndexSet{
		words:  make([]uint64, ((right-offset)>>6)+1),
		offset: offset,
		left:   left,
		right:  right,
	}, nil
}

// NewBitIndexSetOf creates a set over [keys[0], keys[len-1]] containing the
// given sorted distinct keys.
func NewBitIndexSetOf(keys []int) (*BitIndexSet, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no keys")
	}
	s, err := NewBitIndexSet(keys[0], keys[len(keys)-1])
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		s.Set(k)
	}
	return s, nil
}

// Left returns the lowest representable index.
func (s *BitIndexSet) Left() int {
	return s.left
}

// Right returns the highest representable index.
func (s *BitIndexSet) Right() int {
	return s.right
}

// Set adds index i to the set.
func (s *BitIndexSet) Set(i int) {
	b := i - s.offset
	s.words[b>>6] |= uint64(1) << (b & 63)
}

// SetRange adds every index in [from, to] to the set.
func (s *BitIndexSet) SetRange(from, to int) {
	f := from - s.offset
	t := to - s.offset
	wf, wt := f>>6, t>>6
	maskF := ^uint64(0) << (f & 63)
	maskT := ^uint64(0) >> (63 - (t & 63))
	if wf == wt {
		s.words[wf] |= maskF & maskT
		return
	}
	s.words[wf] |= maskF
	for w := wf + 1; w < wt; w++ {
		s.words[w] = ^uint64(0)
	}
	s.words[wt] |= maskT
}

// Contains reports whether index i is in the set.
func (s *BitIndexSet) Contains(i int) bool {
	b := i - s.offset
	return s.words[b>>6]&(uint64(1)<<(b&63)) != 0
}

// Cardinality returns the number of indices in the set.
func (s *BitIndexSet) Cardinality() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// NextSet returns the smallest set index >= k, or -1 when there is none.
func (s *BitIndexSet) NextSet(k int) int {
	if k < s.left {
		k = s.left
	}
	if k > s.right {
		return -1
	}
	b := k - s.offset
	w := b >> 6
	word := s.words[w] & (^uint64(0) << (b & 63))
	for {
		if word != 0 {
			i := s.offset + (w << 6) + int(internal.CountTrailingZerosInU64(word))
			if i > s.right {
				return -1
			}
			return i
		}
		w++
		if w == len(s.words) {
			return -1
		}
		word = s.words[w]
	}
}

// PreviousSet returns the largest set index <= k, or -1 when there is none.
func (s *BitIndexSet) PreviousSet(k int) int {
	if k > s.right {
		k = s.right
	}
	if k < s.left {
		return -1
	}
	b := k - s.offset
	w := b >> 6
	word := s.words[w] & (^uint64(0) >> (63 - (b & 63)))
	for {
		if word != 0 {
			i := s.offset + (w << 6) + 63 - int(internal.CountLeadingZerosInU64(word))
			if i < s.left {
				return -1
			}
			return i
		}
		if w == 0 {
			return -1
		}
		w--
		word = s.words[w]
	}
}

// NextClear returns the smallest index >= k not in the set, or -1 when every
// index up to Right() is set.
func (s *BitIndexSet) NextClear(k int) int {
	if k < s.left {
		k = s.left
	}
	if k > s.right {
		return -1
	}
	b := k - s.offset
	w := b >> 6
	word := ^s.words[w] & (^uint64(0) << (b & 63))
	for {
		if word != 0 {
			i := s.offset + (w << 6) + int(internal.CountTrailingZerosInU64(word))
			if i > s.right {
				return -1
			}
			return i
		}
		w++
		if w == len(s.words) {
			return -1
		}
		word = ^s.words[w]
	}
}

// PreviousClear returns the largest index <= k not in the set, or -1 when every
// index down to Left() is set.
func (s *BitIndexSet) PreviousClear(k int) int {
	if k > s.right {
		k = s.right
	}
	if k < s.left {
		return -1
	}
	b := k - s.offset
	w := b >> 6
	word := ^s.words[w] & (^uint64(0) >> (63 - (b & 63)))
	for {
		if word != 0 {
			i := s.offset + (w << 6) + 63 - int(internal.CountLeadingZerosInU64(word))
			if i < s.left {
				return -1
			}
			return i
		}
		if w == 0 {
			return -1
		}
		w--
		word = ^s.words[w]
	}
}
