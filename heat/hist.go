// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"math"
	"sort"
)

// LogBins returns n+1 log-spaced bin edges for histograms drawn on
// log axes. The first edge sits at 0.5 so every positive integer
// count lands in a bin; the last edge is max+1.
func LogBins(max float64, n int) []float64 {
	if max < 1 {
		max = 1
	}
	lo, hi := math.Log10(0.5), math.Log10(max+1)
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = math.Pow(10, lo+(hi-lo)*float64(i)/float64(n))
	}
	return edges
}

// UniformBins returns n+1 evenly spaced bin edges covering [lo, hi].
func UniformBins(lo, hi float64, n int) []float64 {
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	return edges
}

// HistogramCounts buckets values into the half-open bins
// [edges[i], edges[i+1]) defined by ascending edges; the last bin also
// includes its upper edge. Values outside the edges are dropped.
func HistogramCounts(values, edges []float64) []int {
	counts := make([]int, len(edges)-1)
	last := len(edges) - 1
	for _, v := range values {
		if v < edges[0] || v > edges[last] {
			continue
		}
		i := sort.SearchFloat64s(edges, v)
		// SearchFloat64s returns the first edge >= v: that is
		// the bin index when v sits exactly on an interior
		// edge, and one past it otherwise.
		if i == 0 {
			counts[0]++
			continue
		}
		if edges[i] == v && i < last {
			counts[i]++
			continue
		}
		counts[i-1]++
	}
	return counts
}
