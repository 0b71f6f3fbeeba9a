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

import "github.com/valyala/fastrand"

// PivotingStrategy selects how pivot candidates are sampled from a sub-range.
// A poor sample degrades performance, never correctness.
type PivotingStrategy int64

const (
	// PivotSingleMedian3 partitions around a single pivot, the median of three
	// sampled values.
	PivotSingleMedian3 PivotingStrategy = iota
	// PivotDual partitions around two pivots sampled at the tertiles.
	PivotDual
	// PivotDual5 partitions around two pivots, the 2nd and 4th of five sorted
	// sample values.
	PivotDual5
)

// median3Index returns whichever of the indices i, j, k holds the median of
// the three values.
func median3Index(a []float64, i, j, k int) int {
	x, y, z := a[i], a[j], a[k]
	if x < y {
		if y < z {
			return j
		}
		if x < z {
			return k
		}
		return i
	}
	if x < z {
		return i
	}
	if y < z {
		return k
	}
	return j
}

// pivotMedian3 samples the range ends and the target position itself, so a
// target near one end biases the pivot guess towards that end.
func pivotMedian3(a []float64, lo, hi, k int) int {
	m := k
	if m <= lo || m >= hi {
		m = lo + (hi-lo)/2
	}
	return median3Index(a, lo, m, hi)
}

// pivotMedian3Random samples three random in-range positions. Used to break
// adversarial patterns after repeated unbalanced partitions.
func pivotMedian3Random(a []float64, lo, hi int) int {
	n := uint32(hi - lo + 1)
	i := lo + int(fastrand.Uint32n(n))
	j := lo + int(fastrand.Uint32n(n))
	k := lo + int(fastrand.Uint32n(n))
	return median3Index(a, i, j, k)
}

// pivotDual samples the tertile positions, returning the index pair ordered by
// value.
func pivotDual(a []float64, lo, hi int) (int, int) {
	third := (hi - lo + 1) / 3
	p1 := lo + third
	p2 := hi - third
	if a[p2] < a[p1] {
		p1, p2 = p2, p1
	}
	return p1, p2
}

// pivotDual5 samples five points spread across the range and returns the
// indices of the 2nd and 4th smallest sampled values. The spacing follows the
// classic dual-pivot quicksort: roughly a seventh of the range around the
// midpoint.
func pivotDual5(a []float64, lo, hi int) (int, int) {
	n := hi - lo + 1
	seventh := (n >> 3) + (n >> 6) + 1
	e := [5]int{}
	e[2] = lo + (n >> 1)
	e[1] = e[2] - seventh
	e[0] = e[1] - seventh
	e[3] = e[2] + seventh
	e[4] = e[3] + seventh
	for i := 1; i < 5; i++ {
		t := e[i]
		j := i - 1
		for j >= 0 && a[t] < a[e[j]] {
			e[j+1] = e[j]
			j--
		}
		e[j+1] = t
	}
	return e[1], e[3]
}

// pivotDualRandom samples two random positions, ordered by value. The random
// counterpart of pivotDual for pattern breaking.
func pivotDualRandom(a []float64, lo, hi int) (int, int) {
	n := uint32(hi - lo + 1)
	p1 := lo + int(fastrand.Uint32n(n))
	p2 := lo + int(fastrand.Uint32n(n))
	if p1 == p2 {
		if p2 < hi {
			p2++
		} else {
			p2--
		}
	}
	if a[p2] < a[p1] {
		p1, p2 = p2, p1
	}
	return p1, p2
}
