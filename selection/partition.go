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

import "github.com/orderstat/selection-go/common"

// Partition primitives over a[lo..hi] (inclusive, lo < hi, no NaN in range).
// Each rearranges the range around one or two pivot values and reports the
// exact boundaries of the resolved regions. Zero-valued pivots are routed to
// partitionTernary, the only primitive that groups both signed zeros and can
// restore their order inline.

// partitionSingle performs a Hoare two-way partition around the value v at
// pivot index p. On return a[j] == v, a[i] <= v for lo <= i < j and
// a[i] >= v for j < i <= hi. The caller must not pass a zero-valued pivot.
func partitionSingle(a []float64, lo, hi, p int) int {
	a[p], a[lo] = a[lo], a[p]
	v := a[lo]
	i, j := lo, hi+1
	for {
		i++
		for a[i] < v {
			if i == hi {
				break
			}
			i++
		}
		j--
		for v < a[j] {
			if j == lo {
				break
			}
			j--
		}
		if i >= j {
			break
		}
		a[i], a[j] = a[j], a[i]
	}
	a[lo], a[j] = a[j], a[lo]
	return j
}

// partitionTernary performs a Bentley-McIlroy three-way partition around the
// value v at pivot index p. Returns [eqFrom, eqTo), the maximal run equal to
// v: a[i] < v for i < eqFrom and a[i] > v for i >= eqTo. A zero pivot value
// collects both signed zeros into the run and rewrites it with the negative
// zeros first, so the run holds exact rank values.
func partitionTernary(a []float64, lo, hi, p int) (int, int) {
	a[p], a[lo] = a[lo], a[p]
	v := a[lo]
	i, j := lo, hi+1
	pp, q := lo, hi+1
	for {
		i++
		for a[i] < v {
			if i == hi {
				break
			}
			i++
		}
		j--
		for v < a[j] {
			if j == lo {
				break
			}
			j--
		}
		if i == j && a[i] == v {
			pp++
			a[pp], a[i] = a[i], a[pp]
		}
		if i >= j {
			break
		}
		a[i], a[j] = a[j], a[i]
		if a[i] == v {
			pp++
			a[pp], a[i] = a[i], a[pp]
		}
		if a[j] == v {
			q--
			a[q], a[j] = a[j], a[q]
		}
	}
	// Vacuum the stashed equal elements into the middle.
	i = j + 1
	for k := lo; k <= pp; k++ {
		a[k], a[j] = a[j], a[k]
		j--
	}
	for k := hi; k >= q; k-- {
		a[k], a[i] = a[i], a[k]
		i++
	}
	eqFrom, eqTo := j+1, i
	if v == 0 {
		n := countSignedZeros(a, eqFrom, eqTo-1)
		for k := eqFrom; k < eqFrom+n; k++ {
			a[k] = common.NegativeZero()
		}
		for k := eqFrom + n; k < eqTo; k++ {
			a[k] = 0
		}
	}
	return eqFrom, eqTo
}

// partitionDual performs a dual-pivot (Yaroslavskiy) partition around the
// values v1 < v2 at pivot indices p1 and p2. Returns k0 <= k1 <= k2 <= k3:
// a[i] < v1 for i < k0, a[k0..k1] == v1, v1 <= a[i] <= v2 for k1 < i < k2,
// a[k2..k3] == v2 and a[i] > v2 for i > k3.
//
// The equal runs are expanded beyond the pivot slots only when the middle
// region dominates the range, which signals heavy duplication of the pivot
// values; otherwise the scan cost is not paid and k0 == k1, k2 == k3.
//
// The caller must route equal or zero-valued pivots to partitionTernary.
func partitionDual(a []float64, lo, hi, p1, p2, minSize int) (int, int, int, int) {
	if a[p2] < a[p1] {
		p1, p2 = p2, p1
	}
	a[p1], a[lo] = a[lo], a[p1]
	if p2 == lo {
		p2 = p1
	}
	a[p2], a[hi] = a[hi], a[p2]
	v1, v2 := a[lo], a[hi]

	lt, gt := lo+1, hi-1
	k := lt
	for k <= gt {
		if a[k] < v1 {
			a[k], a[lt] = a[lt], a[k]
			lt++
		} else if a[k] > v2 {
			for a[gt] > v2 && k < gt {
				gt--
			}
			a[k], a[gt] = a[gt], a[k]
			gt--
			if a[k] < v1 {
				a[k], a[lt] = a[lt], a[k]
				lt++
			}
		}
		k++
	}
	lt--
	gt++
	a[lo], a[lt] = a[lt], a[lo]
	a[hi], a[gt] = a[gt], a[hi]

	k0, k1 := lt, lt
	k2, k3 := gt, gt
	if gt-lt-1 > hi-lo+1-2*minSize {
		i, j := lt+1, gt-1
		for m := lt + 1; m <= j; m++ {
			if a[m] == v1 {
				a[m], a[i] = a[i], a[m]
				i++
			} else if a[m] == v2 {
				for a[j] == v2 && m < j {
					j--
				}
				a[m], a[j] = a[j], a[m]
				j--
				if a[m] == v1 {
					a[m], a[i] = a[i], a[m]
					i++
				}
			}
		}
		k1 = i - 1
		k2 = j + 1
	}
	return k0, k1, k2, k3
}
