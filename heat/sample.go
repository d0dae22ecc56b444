// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"math/rand"
	"sort"

	"github.com/xiaguan/blitzkv-vis/snapshot"
)

// FreqQuantiles summarizes an access-frequency distribution by the
// quantiles the benchmark harness reports for each variant.
type FreqQuantiles struct {
	P50, P95, P99, Max float64
}

// QuantilesOf extracts the frequency quantiles from a variant result.
func QuantilesOf(r snapshot.Result) FreqQuantiles {
	return FreqQuantiles{P50: r.FreqP50, P95: r.FreqP95, P99: r.FreqP99, Max: r.FreqMax}
}

// SampleFrequencies draws n synthetic access frequencies distributed
// like q: half the samples land below P50, 45% between P50 and P95,
// 4% between P95 and P99, and the rest in the tail up to Max. Callers
// pass their own rng so diagram output stays reproducible.
func SampleFrequencies(q FreqQuantiles, n int, rng *rand.Rand) []float64 {
	freqs := make([]float64, n)
	for i := range freqs {
		switch r := rng.Float64(); {
		case r < 0.50:
			freqs[i] = uniform(rng, 1, q.P50)
		case r < 0.95:
			freqs[i] = uniform(rng, q.P50, q.P95)
		case r < 0.99:
			freqs[i] = uniform(rng, q.P95, q.P99)
		default:
			freqs[i] = uniform(rng, q.P99, q.Max)
		}
	}
	return freqs
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// SynthPage is a synthetic page generated from frequency quantiles,
// used where a diagram needs page-level shape but the results file
// only carries distribution summaries.
type SynthPage struct {
	ID   int
	Freq float64
	Hot  bool
	Size int // drawn extent, in [1, 10]
}

// SynthPages generates n synthetic pages whose frequencies follow q,
// sorted by descending frequency. A page is hot when its frequency
// reaches hotThreshold.
func SynthPages(q FreqQuantiles, n int, hotThreshold float64, rng *rand.Rand) []SynthPage {
	freqs := SampleFrequencies(q, n, rng)
	pages := make([]SynthPage, n)
	for i, f := range freqs {
		pages[i] = SynthPage{
			ID:   i,
			Freq: f,
			Hot:  f >= hotThreshold,
			Size: 1 + rng.Intn(10),
		}
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Freq > pages[j].Freq })
	return pages
}
