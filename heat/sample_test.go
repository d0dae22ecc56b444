// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/aclements/go-moremath/stats"
)

var testQuantiles = FreqQuantiles{P50: 2, P95: 10, P99: 50, Max: 200}

func TestSampleFrequenciesRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	freqs := SampleFrequencies(testQuantiles, 5000, rng)
	if len(freqs) != 5000 {
		t.Fatalf("got %d samples, want 5000", len(freqs))
	}
	for _, f := range freqs {
		if f < 1 || f > testQuantiles.Max {
			t.Fatalf("sample %v outside [1, %v]", f, testQuantiles.Max)
		}
	}
	// Half the mass sits below P50, so the mean must stay well
	// under the P95 knee.
	if m := stats.Mean(freqs); m <= 0 || m >= testQuantiles.P95 {
		t.Errorf("mean %v implausible for quantiles %+v", m, testQuantiles)
	}
}

func TestSampleFrequenciesReproducible(t *testing.T) {
	a := SampleFrequencies(testQuantiles, 100, rand.New(rand.NewSource(42)))
	b := SampleFrequencies(testQuantiles, 100, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different samples")
	}
}

func TestSynthPages(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pages := SynthPages(testQuantiles, 200, 5, rng)
	if len(pages) != 200 {
		t.Fatalf("got %d pages, want 200", len(pages))
	}
	if !sort.SliceIsSorted(pages, func(i, j int) bool { return pages[i].Freq > pages[j].Freq }) {
		t.Error("pages not sorted by descending frequency")
	}
	for _, p := range pages {
		if p.Hot != (p.Freq >= 5) {
			t.Errorf("page %d: Hot = %v with Freq %v and threshold 5", p.ID, p.Hot, p.Freq)
		}
		if p.Size < 1 || p.Size > 10 {
			t.Errorf("page %d: Size %d outside [1, 10]", p.ID, p.Size)
		}
	}
}
