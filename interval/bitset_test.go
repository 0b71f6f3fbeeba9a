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

func TestNewBitIndexSetErrors(t *testing.T) {
	_, err := NewBitIndexSet(-1, 5)
	assert.Error(t, err)
	_, err = NewBitIndexSet(5, 4)
	assert.Error(t, err)
	_, err = NewBitIndexSetOf(nil)
	assert.Error(t, err)
}

func TestBitIndexSetBasic(t *testing.T) {
	s, err := NewBitIndexSet(0, 200)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Cardinality())
	for _, k := range []int{0, 1, 63, 64, 65, 130, 200} {
		assert.False(t, s.Contains(k))
		s.Set(k)
		assert.True(t, s.Contains(k))
	}
	assert.Equal(t, 7, s.Cardinality())
	assert.False(t, s.Contains(2))
	assert.False(t, s.Contains(129))
}

func TestBitIndexSetOffsetStorage(t *testing.T) {
	// A narrow range far from zero must not allocate words below it.
	s, err := NewBitIndexSet(1000000, 1000063)
	require.NoError(t, err)
	s.Set(1000000)
	s.Set(1000063)
	assert.Equal(t, 2, s.Cardinality())
	assert.Equal(t, 1000000, s.NextSet(1000000))
	assert.Equal(t, 1000063, s.NextSet(1000001))
	assert.Equal(t, 1000000, s.PreviousSet(1000062))
	assert.Equal(t, 1000001, s.NextClear(1000000))
	assert.Equal(t, 1000062, s.PreviousClear(1000063))
}

func TestBitIndexSetScans(t *testing.T) {
	s, err := NewBitIndexSet(3, 300)
	require.NoError(t, err)
	for _, k := range []int{5, 64, 191, 300} {
		s.Set(k)
	}
	assert.Equal(t, 5, s.NextSet(3))
	assert.Equal(t, 5, s.NextSet(5))
	assert.Equal(t, 64, s.NextSet(6))
	assert.Equal(t, 191, s.NextSet(65))
	assert.Equal(t, 300, s.NextSet(192))
	assert.Equal(t, 300, s.NextSet(300))
	// Clamped below, exhausted above.
	assert.Equal(t, 5, s.NextSet(-10))
	assert.Equal(t, -1, s.NextSet(301))

	assert.Equal(t, 300, s.PreviousSet(300))
	assert.Equal(t, 191, s.PreviousSet(299))
	assert.Equal(t, 64, s.PreviousSet(190))
	assert.Equal(t, 5, s.PreviousSet(63))
	assert.Equal(t, -1, s.PreviousSet(4))
	assert.Equal(t, 300, s.PreviousSet(1000))
}

func TestBitIndexSetClearScans(t *testing.T) {
	s, err := NewBitIndexSet(0, 130)
	require.NoError(t, err)
	s.SetRange(0, 130)
	assert.Equal(t, -1, s.NextClear(0))
	assert.Equal(t, -1, s.PreviousClear(130))

	s2, err := NewBitIndexSet(0, 130)
	require.NoError(t, err)
	s2.SetRange(0, 63)
	s2.SetRange(65, 130)
	assert.Equal(t, 64, s2.NextClear(0))
	assert.Equal(t, 64, s2.NextClear(64))
	assert.Equal(t, -1, s2.NextClear(65))
	assert.Equal(t, 64, s2.PreviousClear(130))
	assert.Equal(t, 64, s2.PreviousClear(64))
	assert.Equal(t, -1, s2.PreviousClear(63))
}

func TestBitIndexSetSetRange(t *testing.T) {
	testCases := []struct {
		name     string
		from, to int
	}{
		{name: "within one word", from: 10, to: 20},
		{name: "word aligned", from: 64, to: 127},
		{name: "spanning three words", from: 60, to: 140},
		{name: "single index", from: 77, to: 77},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewBitIndexSet(0, 200)
			require.NoError(t, err)
			s.SetRange(tc.from, tc.to)
			assert.Equal(t, tc.to-tc.from+1, s.Cardinality())
			for k := tc.from; k <= tc.to; k++ {
				assert.True(t, s.Contains(k))
			}
			if tc.from > 0 {
				assert.False(t, s.Contains(tc.from-1))
			}
			assert.False(t, s.Contains(tc.to+1))
		})
	}
}

func TestNewBitIndexSetOf(t *testing.T) {
	keys := []int{7, 8, 70, 128, 129}
	s, err := NewBitIndexSetOf(keys)
	require.NoError(t, err)
	assert.Equal(t, 7, s.Left())
	assert.Equal(t, 129, s.Right())
	assert.Equal(t, len(keys), s.Cardinality())
	for _, k := range keys {
		assert.True(t, s.Contains(k))
	}
}
