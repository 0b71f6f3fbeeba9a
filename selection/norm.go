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
	"math"

	"github.com/orderstat/selection-go/common"
)

// The partition and sort routines in this package compare with the < operator,
// which cannot see NaN or the sign of zero. NaN is therefore relocated to the
// tail of the working range before any partitioning, and the order of signed
// zeros is restored on every range resolved by <-comparisons. Bounds are
// inclusive throughout.

// trimNaN moves every NaN in a[lo..hi] to the tail of the range and returns
// the largest index of the NaN-free prefix, or lo-1 when the whole range is
// NaN. Idempotent; the order among the relocated NaNs is unspecified.
func trimNaN(a []float64, lo, hi int) int {
	end := hi
	for i := hi; i >= lo; i-- {
		if math.IsNaN(a[i]) {
			a[i] = a[end]
			a[end] = math.NaN()
			end--
		}
	}
	return end
}

// countSignedZeros returns the number of -0.0 values in a[lo..hi].
func countSignedZeros(a []float64, lo, hi int) int {
	n := 0
	for i := lo; i <= hi; i++ {
		if common.IsNegativeZero(a[i]) {
			n++
		}
	}
	return n
}

// restoreSignedZeroOrder rewrites the zero block of the <-sorted range
// a[lo..hi] so that the negative zeros come first. A range without zeros, or
// with zeros of one sign only in their proper place, is rewritten to an
// identical state.
func restoreSignedZeroOrder(a []float64, lo, hi int) {
	i := lo
	for i <= hi && a[i] < 0 {
		i++
	}
	j := i
	n := 0
	for j <= hi && a[j] == 0 {
		if math.Signbit(a[j]) {
			n++
		}
		j++
	}
	for k := i; k < i+n; k++ {
		a[k] = common.NegativeZero()
	}
	for k := i + n; k < j; k++ {
		a[k] = 0
	}
}

// insertionSort sorts a[lo..hi] ascending using the < operator. The caller is
// responsible for the NaN precondition and for restoring signed-zero order.
func insertionSort(a []float64, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		v := a[i]
		j := i - 1
		for j >= lo && v < a[j] {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
