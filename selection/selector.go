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

// Package selection rearranges float64 slices in place so that chosen target
// ranks hold the values they would have in the fully sorted slice, without the
// cost of a full sort. Values are ordered by the library total order: NaN is
// greater than everything else and -0.0 sorts before 0.0.
package selection

import (
	"errors"
	"fmt"
	"slices"

	"github.com/orderstat/selection-go/common"
	"github.com/orderstat/selection-go/internal"
	"github.com/orderstat/selection-go/interval"
)

const (
	// DefaultMinSelectSize is the default sub-range length below which the
	// residual range is insertion-sorted instead of partitioned further.
	DefaultMinSelectSize = 20

	// minSelectSizeFloor keeps the 5-point pivot sampling inside its range.
	minSelectSizeFloor = 8

	// Consecutive badly unbalanced partitions tolerated before pivot sampling
	// switches to random positions.
	patternBreakAfter = 2

	// Target sets at most this large are tracked by plain linear scans.
	scanningIntervalMaxKeys = 8

	// Dense target sets spanning at least this many ranks are tracked at
	// compressed resolution instead of one bit per rank. Iteration then visits
	// approximate positions, which costs rework but never correctness.
	compressedIntervalMinSpan    = 1 << 26
	compressedIntervalMaxBuckets = 1 << 16
)

var (
	ErrUnknownStrategy = errors.New("unknown pivoting strategy")
	ErrMinSelectSize   = errors.New("minimum selection size must be at least 8")
)

// Selector resolves order statistics of float64 slices in place. The zero
// value is not usable, use one of the constructors. A Selector is not safe for
// concurrent use, and a Selector with a pivot cache must be dedicated to one
// array (the cache remembers that array's resolved positions).
type Selector struct {
	strategy   PivotingStrategy
	minSize    int
	cacheDepth int
	cache      *PivotCache
	step       func(a []float64, lo, hi, k int, random bool) partitionBounds
}

// NewDefaultSelector returns a Selector with the 5-point dual-pivot strategy
// and the default minimum selection size.
func NewDefaultSelector() *Selector {
	s, err := NewSelector(PivotDual5, DefaultMinSelectSize)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSelector returns a Selector using the given pivoting strategy and
// minimum selection size.
func NewSelector(strategy PivotingStrategy, minSelectSize int) (*Selector, error) {
	if minSelectSize < minSelectSizeFloor {
		return nil, ErrMinSelectSize
	}
	s := &Selector{strategy: strategy, minSize: minSelectSize}
	if err := s.resolveStep(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSelectorWithPivotCache returns a Selector that additionally keeps a
// pivot cache of the given tree depth, amortizing repeated selections against
// the same array.
func NewSelectorWithPivotCache(strategy PivotingStrategy, minSelectSize, cacheDepth int) (*Selector, error) {
	s, err := NewSelector(strategy, minSelectSize)
	if err != nil {
		return nil, err
	}
	if cacheDepth < 1 || cacheDepth > MaxPivotCacheDepth {
		return nil, fmt.Errorf("cache depth must be in [1, %d]: %d", MaxPivotCacheDepth, cacheDepth)
	}
	s.cacheDepth = cacheDepth
	return s, nil
}

// The strategy is matched once here; the hot loops call the resolved function.
func (s *Selector) resolveStep() error {
	switch s.strategy {
	case PivotSingleMedian3:
		s.step = s.stepSingle
	case PivotDual:
		s.step = s.stepDual
	case PivotDual5:
		s.step = s.stepDual5
	default:
		return ErrUnknownStrategy
	}
	return nil
}

// Select rearranges a so that a[k] holds the value of rank k under the total
// order and returns that value. Panics when k is out of range.
func Select(a []float64, k int) float64 {
	return NewDefaultSelector().Select(a, k)
}

// SelectMultiple rearranges a so that every index in ks holds the value of
// that rank. Panics when any index is out of range.
func SelectMultiple(a []float64, ks []int) {
	NewDefaultSelector().SelectMultiple(a, ks)
}

// PartitionIndices partitions a around every index in ks. Panics when any
// index is out of range.
func PartitionIndices(a []float64, ks []int) {
	NewDefaultSelector().PartitionIndices(a, ks)
}

// Select rearranges a so that a[k] holds the value of rank k under the total
// order and returns that value. Panics when k is out of range.
func (s *Selector) Select(a []float64, k int) float64 {
	checkIndex(len(a), k)
	s.ensureCache(len(a))
	end := trimNaN(a, 0, len(a)-1)
	if k > end {
		return a[k]
	}
	lo, hi := 0, end
	if s.cache != nil {
		clo, chi := s.cache.Bounds(k)
		if clo == chi {
			return a[k]
		}
		lo = internal.Max(lo, clo)
		hi = internal.Min(hi, chi)
	}
	s.selectOne(a, lo, hi, k, s.record(nil))
	return a[k]
}

// SelectWithNext resolves rank k like Select and additionally returns the
// value of rank k+1, found by scanning the resolved upper neighbor region for
// its minimum rather than running a second selection. Panics unless both k and
// k+1 are in range.
func (s *Selector) SelectWithNext(a []float64, k int) (float64, float64) {
	checkIndex(len(a), k)
	checkIndex(len(a), k+1)
	s.ensureCache(len(a))
	end := trimNaN(a, 0, len(a)-1)
	if k > end {
		return a[k], a[k+1]
	}
	lo, hi := 0, end
	if s.cache != nil {
		clo, chi := s.cache.Bounds(k)
		if clo == chi {
			// Rank k was resolved by an earlier call; only k+1 may need work.
			if k+1 <= end {
				nlo, nhi := s.cache.Bounds(k + 1)
				if nlo != nhi {
					s.selectOne(a, internal.Max(0, nlo), internal.Min(end, nhi), k+1, s.record(nil))
				}
			}
			return a[k], a[k+1]
		}
		lo = internal.Max(lo, clo)
		hi = internal.Min(hi, chi)
	}
	rhi, whi := s.selectOne(a, lo, hi, k, s.record(nil))
	if k < rhi || k == whi {
		// k+1 sits in the same resolved run, or just past the window where the
		// neighboring position is itself resolved (or the NaN tail).
		return a[k], a[k+1]
	}
	next := a[k+1]
	for i := k + 2; i <= whi; i++ {
		next = common.MinFloat64(next, a[i])
	}
	return a[k], next
}

// SelectMultiple rearranges a so that every index in ks holds the value of
// that rank. Panics when any index is out of range. Duplicate and unsorted
// target indices are accepted.
func (s *Selector) SelectMultiple(a []float64, ks []int) {
	keys := prepareTargets(len(a), ks)
	if len(keys) == 0 {
		return
	}
	s.ensureCache(len(a))
	end := trimNaN(a, 0, len(a)-1)
	keys = trimKeys(keys, end)
	if len(keys) == 0 {
		return
	}
	if s.cache != nil {
		s.selectSequential(a, end, keys)
		return
	}
	s.partitionIndicesSorted(a, end, keys)
}

// PartitionIndices is the lower-level entry behind SelectMultiple: it
// partitions a around every index in ks without pivot-cache bookkeeping.
func (s *Selector) PartitionIndices(a []float64, ks []int) {
	keys := prepareTargets(len(a), ks)
	if len(keys) == 0 {
		return
	}
	end := trimNaN(a, 0, len(a)-1)
	keys = trimKeys(keys, end)
	if len(keys) == 0 {
		return
	}
	s.partitionIndicesSorted(a, end, keys)
}

// partitionBounds reports the regions fully resolved by one partition step,
// as up to two inclusive runs. The second run is empty unless the step was
// dual-pivot.
type partitionBounds struct {
	r1lo, r1hi int
	r2lo, r2hi int
}

func minOuterSide(lo, hi int, b partitionBounds) int {
	right := hi - b.r1hi
	if b.r2lo <= b.r2hi {
		right = hi - b.r2hi
	}
	return internal.Min(b.r1lo-lo, right)
}

func stepTernary(a []float64, lo, hi, p int) partitionBounds {
	eqFrom, eqTo := partitionTernary(a, lo, hi, p)
	return partitionBounds{r1lo: eqFrom, r1hi: eqTo - 1, r2lo: 0, r2hi: -1}
}

func (s *Selector) stepSingle(a []float64, lo, hi, k int, random bool) partitionBounds {
	var p int
	if random {
		p = pivotMedian3Random(a, lo, hi)
	} else {
		p = pivotMedian3(a, lo, hi, k)
	}
	if a[p] == 0 {
		return stepTernary(a, lo, hi, p)
	}
	j := partitionSingle(a, lo, hi, p)
	return partitionBounds{r1lo: j, r1hi: j, r2lo: 0, r2hi: -1}
}

func (s *Selector) stepDual(a []float64, lo, hi, k int, random bool) partitionBounds {
	var p1, p2 int
	if random {
		p1, p2 = pivotDualRandom(a, lo, hi)
	} else {
		p1, p2 = pivotDual(a, lo, hi)
	}
	return s.finishDual(a, lo, hi, p1, p2)
}

func (s *Selector) stepDual5(a []float64, lo, hi, k int, random bool) partitionBounds {
	var p1, p2 int
	if random {
		p1, p2 = pivotDualRandom(a, lo, hi)
	} else {
		p1, p2 = pivotDual5(a, lo, hi)
	}
	return s.finishDual(a, lo, hi, p1, p2)
}

func (s *Selector) finishDual(a []float64, lo, hi, p1, p2 int) partitionBounds {
	if a[p1] == a[p2] || a[p1] == 0 || a[p2] == 0 {
		// Equal pivots, or a zero pivot whose signed variants the dual scheme
		// cannot keep rank-exact: degrade to a ternary step.
		p := p1
		if a[p2] == 0 {
			p = p2
		}
		return stepTernary(a, lo, hi, p)
	}
	k0, k1, k2, k3 := partitionDual(a, lo, hi, p1, p2, s.minSize)
	return partitionBounds{r1lo: k0, r1hi: k1, r2lo: k2, r2hi: k3}
}

// selectOne narrows a[lo..hi] until rank k is resolved. It reports the end of
// the resolved run containing k and the end of the bracketing window at the
// moment of resolution: every element in (k, windowHi] is ordered at or above
// a[k], and position windowHi+1 (when it exists) is already resolved.
func (s *Selector) selectOne(a []float64, lo, hi, k int, rec recordFn) (resolvedHi, windowHi int) {
	bad := 0
	for {
		if hi-lo+1 <= s.minSize {
			insertionSort(a, lo, hi)
			restoreSignedZeroOrder(a, lo, hi)
			if rec != nil {
				rec(lo, hi)
			}
			return hi, hi
		}
		b := s.step(a, lo, hi, k, bad >= patternBreakAfter)
		if rec != nil {
			rec(b.r1lo, b.r1hi)
			if b.r2lo <= b.r2hi {
				rec(b.r2lo, b.r2hi)
			}
		}
		if minOuterSide(lo, hi, b)*8 < hi-lo+1 {
			bad++
		} else {
			bad = 0
		}
		switch {
		case k < b.r1lo:
			hi = b.r1lo - 1
		case k <= b.r1hi:
			return b.r1hi, hi
		case b.r2lo > b.r2hi || k < b.r2lo:
			lo = b.r1hi + 1
			if b.r2lo <= b.r2hi {
				hi = b.r2lo - 1
			}
		case k <= b.r2hi:
			return b.r2hi, hi
		default:
			lo = b.r2hi + 1
		}
	}
}

// selectSequential resolves sorted targets in increasing order, bounding each
// one by the nearest resolved positions found for its predecessors. The
// resolved tracker is exact for moderate lengths and compressed above
// compressedTrackerMinLength, where its bounds are merely wider.
func (s *Selector) selectSequential(a []float64, end int, keys []int) {
	tracker := newResolvedTracker(end + 1)
	rec := s.record(tracker)
	siv := newTargetInterval(keys)
	kmax := keys[len(keys)-1]
	k := siv.Left()
	for {
		rhi := k
		if !tracker.contains(k) {
			lo := tracker.previous(k) + 1
			hi := internal.Min(tracker.next(k)-1, end)
			if s.cache != nil {
				clo, chi := s.cache.Bounds(k)
				lo = internal.Max(lo, clo)
				hi = internal.Min(hi, chi)
			}
			rhi, _ = s.selectOne(a, lo, hi, k, rec)
		}
		if rhi >= kmax {
			return
		}
		_, next := siv.Split(k, rhi)
		if next > kmax {
			return
		}
		k = next
	}
}

// partitionIndicesSorted drives the divide-and-conquer partitioning of many
// targets at once with an explicit frame stack, mirroring the recursion of the
// partition primitives without unbounded call depth.
func (s *Selector) partitionIndicesSorted(a []float64, end int, keys []int) {
	iv, err := interval.NewUpdatingInterval(keys)
	if err != nil {
		// keys were validated by the caller
		panic(err)
	}
	type frame struct {
		lo, hi int
		iv     interval.UpdatingInterval
	}
	stack := make([]frame, 0, 16)
	lo, hi := 0, end
	bad := 0
	for {
		if iv == nil || iv.Empty() {
			if len(stack) == 0 {
				return
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			lo, hi, iv = f.lo, f.hi, f.iv
			bad = 0
			continue
		}
		if hi-lo+1 <= s.minSize {
			insertionSort(a, lo, hi)
			restoreSignedZeroOrder(a, lo, hi)
			iv = nil
			continue
		}
		ka, kb := iv.Left(), iv.Right()
		b := s.step(a, lo, hi, ka+(kb-ka)/2, bad >= patternBreakAfter)
		if minOuterSide(lo, hi, b)*8 < hi-lo+1 {
			bad++
		} else {
			bad = 0
		}
		if b.r2lo > b.r2hi {
			if kb < b.r1lo {
				hi = b.r1lo - 1
				continue
			}
			if ka > b.r1hi {
				lo = b.r1hi + 1
				continue
			}
			left := iv.SplitLeft(b.r1lo, b.r1hi)
			if left != nil && !left.Empty() {
				if !iv.Empty() {
					stack = append(stack, frame{b.r1hi + 1, hi, iv})
				}
				hi = b.r1lo - 1
				iv = left
				continue
			}
			lo = b.r1hi + 1
			continue
		}
		// Dual-pivot step: left, middle and right regions.
		left := iv.SplitLeft(b.r1lo, b.r1hi)
		mid := iv.SplitLeft(b.r2lo, b.r2hi)
		nlo, nhi := 0, -1
		var niv interval.UpdatingInterval
		push := func(flo, fhi int, fiv interval.UpdatingInterval) {
			if fiv == nil || fiv.Empty() {
				return
			}
			if niv == nil {
				nlo, nhi, niv = flo, fhi, fiv
				return
			}
			stack = append(stack, frame{flo, fhi, fiv})
		}
		push(lo, b.r1lo-1, left)
		push(b.r1hi+1, b.r2lo-1, mid)
		push(b.r2hi+1, hi, iv)
		lo, hi, iv = nlo, nhi, niv
	}
}

type recordFn func(lo, hi int)

// record combines the per-call resolved tracker with the cross-call pivot
// cache, either of which may be absent.
func (s *Selector) record(t resolvedTracker) recordFn {
	if t == nil && s.cache == nil {
		return nil
	}
	return func(rlo, rhi int) {
		if t != nil {
			t.fill(rlo, rhi)
		}
		if s.cache != nil {
			s.cache.Record(rlo)
			if rhi > rlo {
				s.cache.Record(rhi)
			}
		}
	}
}

func (s *Selector) ensureCache(length int) {
	if s.cacheDepth == 0 {
		return
	}
	if s.cache == nil || s.cache.Length() != length {
		c, err := NewPivotCache(s.cacheDepth, length)
		if err != nil {
			panic(err)
		}
		s.cache = c
	}
}

func newTargetInterval(keys []int) interval.SearchableInterval {
	var (
		iv  interval.SearchableInterval
		err error
	)
	span := keys[len(keys)-1] - keys[0] + 1
	switch {
	case len(keys) <= scanningIntervalMaxKeys:
		iv, err = interval.NewScanningKeyInterval(keys)
	case len(keys)*4 < span:
		iv, err = interval.NewBinarySearchKeyInterval(keys)
	case span >= compressedIntervalMinSpan:
		level, _ := internal.ExactLog2(internal.CeilPowerOf2((span + compressedIntervalMaxBuckets - 1) / compressedIntervalMaxBuckets))
		iv, err = interval.NewCompressedIndexInterval(keys, level)
	default:
		iv, err = interval.NewBitIndexedInterval(keys)
	}
	if err != nil {
		// keys were validated by the caller
		panic(err)
	}
	return iv
}

func prepareTargets(length int, ks []int) []int {
	for _, k := range ks {
		checkIndex(length, k)
	}
	if len(ks) == 0 {
		return nil
	}
	keys := slices.Clone(ks)
	slices.Sort(keys)
	return slices.Compact(keys)
}

// trimKeys drops targets beyond end: after NaN relocation those positions
// already hold their rank value.
func trimKeys(keys []int, end int) []int {
	i := len(keys)
	for i > 0 && keys[i-1] > end {
		i--
	}
	return keys[:i]
}

func checkIndex(length, k int) {
	if k < 0 || k >= length {
		panic(fmt.Sprintf("selection: target index %d out of range [0, %d)", k, length))
	}
}
