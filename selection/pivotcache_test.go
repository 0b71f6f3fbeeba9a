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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPivotCacheValidation(t *testing.T) {
	_, err := NewPivotCache(0, 100)
	assert.Error(t, err)
	_, err = NewPivotCache(MaxPivotCacheDepth+1, 100)
	assert.Error(t, err)
	_, err = NewPivotCache(3, 0)
	assert.Error(t, err)
}

func TestPivotCacheBoundsEmpty(t *testing.T) {
	c, err := NewPivotCache(3, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Length())
	lo, hi := c.Bounds(42)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 99, hi)
}

func TestPivotCacheNarrowing(t *testing.T) {
	c, err := NewPivotCache(4, 100)
	require.NoError(t, err)

	c.Record(50)
	lo, hi := c.Bounds(10)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 49, hi)
	lo, hi = c.Bounds(80)
	assert.Equal(t, 51, lo)
	assert.Equal(t, 99, hi)

	c.Record(20)
	lo, hi = c.Bounds(10)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 19, hi)
	lo, hi = c.Bounds(30)
	assert.Equal(t, 21, lo)
	assert.Equal(t, 49, hi)

	// A recorded position is returned as a point range.
	lo, hi = c.Bounds(50)
	assert.Equal(t, 50, lo)
	assert.Equal(t, 50, hi)
	lo, hi = c.Bounds(20)
	assert.Equal(t, 20, lo)
	assert.Equal(t, 20, hi)
}

func TestPivotCacheRecordIgnoresOutOfRange(t *testing.T) {
	c, err := NewPivotCache(2, 10)
	require.NoError(t, err)
	c.Record(-1)
	c.Record(10)
	lo, hi := c.Bounds(5)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 9, hi)
}

func TestPivotCacheDepthLimit(t *testing.T) {
	// Depth 1 holds a single node; further positions on the same path drop.
	c, err := NewPivotCache(1, 100)
	require.NoError(t, err)
	c.Record(50)
	c.Record(25)
	lo, hi := c.Bounds(25)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 49, hi)
}

func TestPivotCacheRecordDuplicate(t *testing.T) {
	c, err := NewPivotCache(3, 100)
	require.NoError(t, err)
	c.Record(50)
	c.Record(50)
	lo, hi := c.Bounds(40)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 49, hi)
	// The duplicate must not occupy a child slot.
	c.Record(30)
	lo, hi = c.Bounds(40)
	assert.Equal(t, 31, lo)
	assert.Equal(t, 49, hi)
}
