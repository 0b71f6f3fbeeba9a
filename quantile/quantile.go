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

// Package quantile computes exact sample quantiles of float64 slices by
// partial selection instead of a full sort. The input slice is rearranged in
// place. NaN values sort after every finite value, so high quantiles of data
// containing NaN interpolate to NaN.
package quantile

import (
	"errors"
	"fmt"
	"math"

	"github.com/orderstat/selection-go/selection"
)

var (
	ErrEmpty       = errors.New("operation is undefined for an empty data set")
	ErrInvalidRank = errors.New("normalized rank must be between 0 and 1 inclusive")
)

// Estimator computes quantiles over mutable float64 slices using a selection
// engine. The zero value is not usable, use a constructor. An Estimator is not
// safe for concurrent use.
type Estimator struct {
	sel *selection.Selector
}

// NewEstimator returns an Estimator backed by a default selection engine.
func NewEstimator() *Estimator {
	return &Estimator{sel: selection.NewDefaultSelector()}
}

// NewEstimatorWithSelector returns an Estimator backed by the given engine,
// allowing a configured pivoting strategy or a pivot cache for repeated
// queries against the same slice.
func NewEstimatorWithSelector(sel *selection.Selector) (*Estimator, error) {
	if sel == nil {
		return nil, fmt.Errorf("selector must not be nil")
	}
	return &Estimator{sel: sel}, nil
}

// Quantile rearranges data and returns the p-quantile, linearly interpolated
// between the two adjacent order statistics (type 7 estimation, the common
// default: h = p*(n-1)).
func (e *Estimator) Quantile(data []float64, p float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrInvalidRank
	}
	h := p * float64(len(data)-1)
	k := int(h)
	g := h - float64(k)
	if g == 0 {
		// Exact rank, including p == 1. Returned verbatim so a -0.0 order
		// statistic keeps its sign.
		return e.sel.Select(data, k), nil
	}
	lower, upper := e.sel.SelectWithNext(data, k)
	return lower + g*(upper-lower), nil
}

// Quantiles rearranges data once and returns the quantile for each probability
// in ps, resolving all required ranks in a single multi-target selection.
func (e *Estimator) Quantiles(data []float64, ps []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	type rank struct {
		k int
		g float64
	}
	ranks := make([]rank, len(ps))
	ks := make([]int, 0, 2*len(ps))
	for i, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, ErrInvalidRank
		}
		h := p * float64(len(data)-1)
		k := int(h)
		g := h - float64(k)
		ranks[i] = rank{k: k, g: g}
		ks = append(ks, k)
		if g > 0 {
			ks = append(ks, k+1)
		}
	}
	e.sel.SelectMultiple(data, ks)
	out := make([]float64, len(ps))
	for i, r := range ranks {
		if r.g == 0 {
			out[i] = data[r.k]
			continue
		}
		out[i] = data[r.k] + r.g*(data[r.k+1]-data[r.k])
	}
	return out, nil
}

// Median rearranges data and returns its median.
func (e *Estimator) Median(data []float64) (float64, error) {
	return e.Quantile(data, 0.5)
}

// OrderStatistic rearranges data and returns its k-th smallest value
// (0-based).
func (e *Estimator) OrderStatistic(data []float64, k int) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}
	if k < 0 || k >= len(data) {
		return 0, fmt.Errorf("order statistic index %d out of range [0, %d)", k, len(data))
	}
	return e.sel.Select(data, k), nil
}
