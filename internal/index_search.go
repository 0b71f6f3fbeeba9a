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

// SearchCriterion selects which neighbor of the probe value an index search
// returns when the value itself is absent.
type SearchCriterion int64

const (
	SearchLE SearchCriterion = iota
	SearchGE
)

// FindIndex searches keys[low..high] (inclusive, sorted ascending, distinct)
// for the position of the key nearest to v under the given criterion:
// SearchLE returns the largest key <= v, SearchGE the smallest key >= v.
// Returns -1 when no key qualifies.
func FindIndex(keys []int, low, high, v int, crit SearchCriterion) int {
	if low > high {
		return -1
	}
	lo, hi := low, high
	for lo < hi {
		mid := lo + (hi-lo)/2
		if keys[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	// lo is the first position with keys[lo] >= v, or high when every key is below v.
	switch crit {
	case SearchGE:
		if keys[lo] >= v {
			return lo
		}
		return -1
	case SearchLE:
		if keys[lo] <= v {
			return lo
		}
		if lo > low {
			return lo - 1
		}
		return -1
	default:
		panic("invalid search criterion")
	}
}
