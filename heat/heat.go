// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heat computes access-concentration statistics over BlitzKV
// page snapshots.
//
// The two entry points, Analyze and Concentration, are pure functions
// of their inputs: they keep no state, never mutate their arguments,
// and may be called concurrently over shared immutable data. Both
// treat an empty page set and an all-zero access distribution as
// defined degenerate cases rather than errors. Negative access counts
// are rejected; the harness never produces them, so one signals a
// corrupt input file.
package heat

import (
	"fmt"
	"math"
	"sort"

	"github.com/xiaguan/blitzkv-vis/snapshot"
)

// Summary describes how accesses spread across the pages of one
// snapshot.
type Summary struct {
	TotalPages    int
	TotalAccesses int64

	// Gini is the Gini coefficient of the access-count
	// distribution: 0 is a perfectly even spread, values toward 1
	// mean a small set of pages absorbs most of the traffic.
	Gini float64

	// Pages is the input page set, passed through untouched for
	// downstream presentation.
	Pages []snapshot.Page
}

// Analyze computes the access-distribution summary for pages. An
// empty slice yields the zero-valued summary. Distributions with at
// most one page or no accesses at all have no measurable
// concentration, so their Gini coefficient is 0.
func Analyze(pages []snapshot.Page) (Summary, error) {
	if len(pages) == 0 {
		return Summary{}, nil
	}

	counts, total, err := accessCounts(pages)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		TotalPages:    len(pages),
		TotalAccesses: total,
		Pages:         pages,
	}
	if len(counts) > 1 && total > 0 {
		sort.Float64s(counts)
		n := float64(len(counts))
		var acc float64
		for i, c := range counts {
			acc += (2*float64(i+1) - n - 1) * c
		}
		sum.Gini = acc / (n * float64(total))
	}
	return sum, nil
}

// Band is the share of total accesses captured by the most-accessed
// pages down to a percentile rank.
type Band struct {
	Percentile float64
	Label      string  // "Top 5%"
	Share      float64 // percent of all accesses, in [0, 100]
}

// Concentration reports, for each requested percentile p in (0, 100],
// the percentage of all accesses that hit the top ceil(n·p/100)
// pages (at least one, at most n). Shares never decrease as p grows.
// With no pages or no accesses every share is zero and the returned
// total is zero.
func Concentration(pages []snapshot.Page, percentiles []float64) ([]Band, int64, error) {
	bands := make([]Band, len(percentiles))
	for i, p := range percentiles {
		if p <= 0 || p > 100 {
			return nil, 0, fmt.Errorf("percentile %v out of range (0, 100]", p)
		}
		bands[i] = Band{Percentile: p, Label: fmt.Sprintf("Top %v%%", p)}
	}

	if len(pages) == 0 {
		return bands, 0, nil
	}
	counts, total, err := accessCounts(pages)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return bands, 0, nil
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(counts)))

	// Prefix sums over the descending counts let every band share
	// one pass.
	prefix := make([]float64, len(counts)+1)
	for i, c := range counts {
		prefix[i+1] = prefix[i] + c
	}

	n := len(counts)
	for i := range bands {
		k := int(math.Ceil(float64(n) * bands[i].Percentile / 100))
		if k < 1 {
			k = 1
		}
		if k > n {
			k = n
		}
		bands[i].Share = prefix[k] / float64(total) * 100
	}
	return bands, total, nil
}

// accessCounts extracts the access counts of pages as float64s along
// with their sum, rejecting negative counts.
func accessCounts(pages []snapshot.Page) ([]float64, int64, error) {
	counts := make([]float64, len(pages))
	var total int64
	for i := range pages {
		c := pages[i].AccessCount
		if c < 0 {
			return nil, 0, fmt.Errorf("page %d: negative access_count %d", pages[i].PageID, c)
		}
		counts[i] = float64(c)
		total += c
	}
	return counts, total, nil
}
