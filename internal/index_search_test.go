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

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindIndex(t *testing.T) {
	keys := []int{2, 5, 9, 20, 21, 35}
	testCases := []struct {
		name     string
		v        int
		crit     SearchCriterion
		expected int
	}{
		{name: "ge exact hit", v: 20, crit: SearchGE, expected: 3},
		{name: "ge between keys", v: 10, crit: SearchGE, expected: 3},
		{name: "ge below all", v: 0, crit: SearchGE, expected: 0},
		{name: "ge above all", v: 40, crit: SearchGE, expected: -1},
		{name: "le exact hit", v: 9, crit: SearchLE, expected: 2},
		{name: "le between keys", v: 19, crit: SearchLE, expected: 2},
		{name: "le above all", v: 100, crit: SearchLE, expected: 5},
		{name: "le below all", v: 1, crit: SearchLE, expected: -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FindIndex(keys, 0, len(keys)-1, tc.v, tc.crit))
		})
	}
}

func TestFindIndexSubRange(t *testing.T) {
	keys := []int{1, 3, 7, 9, 12}
	// Only keys[1..3] are visible.
	assert.Equal(t, 1, FindIndex(keys, 1, 3, 0, SearchGE))
	assert.Equal(t, 3, FindIndex(keys, 1, 3, 100, SearchLE))
	assert.Equal(t, -1, FindIndex(keys, 1, 3, 10, SearchGE))
	assert.Equal(t, -1, FindIndex(keys, 1, 3, 2, SearchLE))
}

func TestFindIndexEmptyRange(t *testing.T) {
	keys := []int{1, 2, 3}
	assert.Equal(t, -1, FindIndex(keys, 2, 1, 2, SearchGE))
	assert.Equal(t, -1, FindIndex(keys, 2, 1, 2, SearchLE))
}

func TestFindIndexInvalidCriterion(t *testing.T) {
	assert.Panics(t, func() {
		FindIndex([]int{1}, 0, 0, 1, SearchCriterion(99))
	})
}
