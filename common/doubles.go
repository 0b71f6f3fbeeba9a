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

package common

import "math"

// CompareFloat64 compares two float64 values using the library total order:
// -0.0 sorts before 0.0, NaN sorts after every other value and all NaN values
// are equal to each other. Returns -1, 0 or 1.
//
// This differs from the < and > operators, which treat -0.0 and 0.0 as equal
// and return false for any comparison involving NaN.
func CompareFloat64(x, y float64) int {
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	// Equal by operators, or at least one NaN.
	xNaN := math.IsNaN(x)
	yNaN := math.IsNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	}
	// Equal numeric values. Only signed zeros remain distinguishable.
	if x == 0 {
		xs := math.Signbit(x)
		ys := math.Signbit(y)
		if xs && !ys {
			return -1
		}
		if !xs && ys {
			return 1
		}
	}
	return 0
}

// MinFloat64 returns the smaller of x and y under the same total order.
// Unlike math.Min it distinguishes the signed zeros and never lets a NaN win.
func MinFloat64(x, y float64) float64 {
	if CompareFloat64(y, x) < 0 {
		return y
	}
	return x
}

// IsNegativeZero returns true only for -0.0.
func IsNegativeZero(x float64) bool {
	return x == 0 && math.Signbit(x)
}

// NegativeZero returns -0.0.
func NegativeZero() float64 {
	return math.Copysign(0, -1)
}
