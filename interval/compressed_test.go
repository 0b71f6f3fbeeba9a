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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompressedIndexSetValidation(t *testing.T) {
	_, err := NewCompressedIndexSet(0, 0, 100)
	assert.Error(t, err)
	_, err = NewCompressedIndexSet(MaxCompressionLevel+1, 0, 100)
	assert.Error(t, err)
	_, err = NewCompressedIndexSet(2, -1, 100)
	assert.Error(t, err)
	_, err = NewCompressedIndexSet(2, 10, 5)
	assert.Error(t, err)
}

func TestCompressedIndexSetOverApproximation(t *testing.T) {
	// Level 3: buckets of 8 indices. Marking one index marks its bucket.
	s, err := NewCompressedIndexSet(3, 0, 127)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Level())
	s.Set(20)
	for k := 16; k <= 23; k++ {
		assert.True(t, s.Contains(k), "k=%d", k)
	}
	assert.False(t, s.Contains(15))
	assert.False(t, s.Contains(24))
}

func TestCompressedIndexSetCoveredRange(t *testing.T) {
	s, err := NewCompressedIndexSet(3, 0, 127)
	require.NoError(t, err)
	// [5, 30] fully covers buckets [8,15] and [16,23] only.
	s.SetCoveredRange(5, 30)
	assert.False(t, s.Contains(5))
	assert.False(t, s.Contains(7))
	for k := 8; k <= 23; k++ {
		assert.True(t, s.Contains(k), "k=%d", k)
	}
	assert.False(t, s.Contains(24))
	assert.False(t, s.Contains(30))
}

func TestCompressedIndexSetCoveredRangeTooNarrow(t *testing.T) {
	s, err := NewCompressedIndexSet(4, 0, 255)
	require.NoError(t, err)
	// A range covering no whole bucket marks nothing.
	s.SetCoveredRange(3, 14)
	for k := 0; k <= 255; k += 5 {
		assert.False(t, s.Contains(k))
	}
}

func TestCompressedIndexSetScans(t *testing.T) {
	s, err := NewCompressedIndexSet(3, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, -1, s.NextIndex(0))
	assert.Equal(t, -1, s.PreviousIndex(100))

	s.SetCoveredRange(16, 31)
	assert.Equal(t, 16, s.NextIndex(0))
	assert.Equal(t, 16, s.NextIndex(16))
	assert.Equal(t, 24, s.NextIndex(24))
	assert.Equal(t, -1, s.NextIndex(32))

	assert.Equal(t, 31, s.PreviousIndex(100))
	assert.Equal(t, 31, s.PreviousIndex(31))
	// Clamped to the query position inside a marked bucket.
	assert.Equal(t, 28, s.PreviousIndex(28))
	assert.Equal(t, -1, s.PreviousIndex(15))
}

func TestCompressedIndexSetBoundsClamping(t *testing.T) {
	// Range not aligned to bucket boundaries.
	s, err := NewCompressedIndexSet(3, 10, 90)
	require.NoError(t, err)
	s.Set(10)
	// The marked bucket starts below Left; NextIndex clamps to Left.
	assert.Equal(t, 10, s.NextIndex(0))
	s.Set(90)
	// The marked bucket ends above Right; PreviousIndex clamps to Right.
	assert.Equal(t, 90, s.PreviousIndex(200))
}

func TestNewCompressedIndexIntervalValidation(t *testing.T) {
	_, err := NewCompressedIndexInterval(nil, 3)
	assert.Error(t, err)
	_, err = NewCompressedIndexInterval([]int{-1, 5}, 3)
	assert.Error(t, err)
	_, err = NewCompressedIndexInterval([]int{5, 5}, 3)
	assert.Error(t, err)
	_, err = NewCompressedIndexInterval([]int{5, 3}, 3)
	assert.Error(t, err)
	_, err = NewCompressedIndexInterval([]int{5, 9}, 0)
	assert.Error(t, err)
}

func TestCompressedIndexIntervalQueries(t *testing.T) {
	// Buckets of 8; members {10, 50, 51, 200}.
	keys := []int{10, 50, 51, 200}
	v, err := NewCompressedIndexInterval(keys, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, v.Left())
	assert.Equal(t, 200, v.Right())

	// Endpoints are exact.
	assert.Equal(t, 10, v.NextIndex(0))
	assert.Equal(t, 10, v.NextIndex(10))
	assert.Equal(t, 200, v.PreviousIndex(200))
	assert.Equal(t, 200, v.PreviousIndex(1000))
	assert.Equal(t, 201, v.NextIndex(201))
	assert.Equal(t, 9, v.PreviousIndex(9))

	// Interior queries land within a bucket of the true member: NextIndex
	// never overshoots it and PreviousIndex never undershoots it.
	for k := 11; k <= 200; k++ {
		next := v.NextIndex(k)
		truth := 200
		for _, m := range keys {
			if m >= k {
				truth = m
				break
			}
		}
		assert.GreaterOrEqual(t, next, k, "k=%d", k)
		assert.LessOrEqual(t, next, truth, "k=%d", k)
	}
	for k := 10; k < 200; k++ {
		prev := v.PreviousIndex(k)
		truth := 10
		for _, m := range keys {
			if m <= k {
				truth = m
			}
		}
		assert.LessOrEqual(t, prev, k, "k=%d", k)
		assert.GreaterOrEqual(t, prev, truth, "k=%d", k)
	}
}

func TestCompressedIndexIntervalSplit(t *testing.T) {
	v, err := NewCompressedIndexInterval([]int{10, 50, 51, 200}, 3)
	require.NoError(t, err)

	// Cutting off [10, 12] leaves a lower part no further than the next
	// member; 13 shares a bucket with 10, so the cut stops right after it.
	upper, lower := v.Split(10, 12)
	assert.Equal(t, 9, upper)
	assert.Equal(t, 13, lower)

	upper, lower = v.Split(13, 48)
	assert.Equal(t, 12, upper)
	assert.Equal(t, 49, lower)

	upper, lower = v.Split(49, 55)
	assert.Equal(t, 48, upper)
	assert.Equal(t, 200, lower)

	// Exhausting the last member yields the past-the-end sentinel.
	_, lower = v.Split(200, 200)
	assert.Equal(t, 201, lower)
}
