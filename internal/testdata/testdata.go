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

// Package testdata derives deterministic pseudo-random datasets from hashes of
// a seed string and the element index, so distribution tests reproduce exactly
// without recording seeds.
package testdata

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Uint64 returns the hash of the seed and index i.
func Uint64(seed string, i int) uint64 {
	var d xxhash.Digest
	d.Reset()
	_, _ = d.WriteString(seed)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(i))
	_, _ = d.Write(b[:])
	return d.Sum64()
}

// Float64s returns n values in [0, 1) derived from the seed.
func Float64s(seed string, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(Uint64(seed, i)>>11) / (1 << 53)
	}
	return out
}

// Float64sIn returns n values in [lo, hi) derived from the seed.
func Float64sIn(seed string, n int, lo, hi float64) []float64 {
	out := Float64s(seed, n)
	for i, v := range out {
		out[i] = lo + v*(hi-lo)
	}
	return out
}

// FewDistinct returns n values drawn from only k distinct values, for
// duplicate-heavy inputs.
func FewDistinct(seed string, n, k int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(Uint64(seed, i) % uint64(k))
	}
	return out
}
