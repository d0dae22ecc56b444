// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"math"
	"reflect"
	"testing"

	"github.com/xiaguan/blitzkv-vis/snapshot"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func pagesWithCounts(counts ...int64) []snapshot.Page {
	pages := make([]snapshot.Page, len(counts))
	for i, c := range counts {
		pages[i] = snapshot.Page{PageID: i, AccessCount: c}
	}
	return pages
}

func TestAnalyze(t *testing.T) {
	for _, test := range []struct {
		name          string
		counts        []int64
		totalAccesses int64
		gini          float64
	}{
		// A single page is a degenerate distribution.
		{"single", []int64{5}, 5, 0},

		// Uniform access counts have no concentration.
		{"uniform", []int64{10, 10, 10, 10}, 40, 0},

		// Maximal two-page inequality: the discrete formula
		// gives (n-1)/n = 0.5, not 1.
		{"two-point", []int64{0, 10}, 10, 0.5},

		// All-zero accesses have no measurable concentration.
		{"zero total", []int64{0, 0, 0}, 0, 0},

		// Hand-computed skewed case: ascending [1 1 1 100],
		// sum_i (2i-n-1)a_i = -3-1+1+300 = 297, n*total = 412.
		{"skewed", []int64{1, 100, 1, 1}, 103, 297.0 / 412.0},
	} {
		sum, err := Analyze(pagesWithCounts(test.counts...))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if sum.TotalPages != len(test.counts) {
			t.Errorf("%s: TotalPages = %d, want %d", test.name, sum.TotalPages, len(test.counts))
		}
		if sum.TotalAccesses != test.totalAccesses {
			t.Errorf("%s: TotalAccesses = %d, want %d", test.name, sum.TotalAccesses, test.totalAccesses)
		}
		if !approx(sum.Gini, test.gini) {
			t.Errorf("%s: Gini = %v, want %v", test.name, sum.Gini, test.gini)
		}
		if sum.Gini < 0 || sum.Gini > 1 {
			t.Errorf("%s: Gini %v outside [0, 1]", test.name, sum.Gini)
		}
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	sum, err := Analyze(nil)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if sum.TotalPages != 0 || sum.TotalAccesses != 0 || sum.Gini != 0 {
		t.Errorf("Analyze(nil) = %+v, want zero summary", sum)
	}
}

func TestAnalyzeNegative(t *testing.T) {
	if _, err := Analyze(pagesWithCounts(3, -1, 2)); err == nil {
		t.Error("negative access count not rejected")
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	pages := pagesWithCounts(9, 1, 5, 3)
	want := pagesWithCounts(9, 1, 5, 3)
	if _, err := Analyze(pages); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(pages, want) {
		t.Errorf("input mutated: %v", pages)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	pages := pagesWithCounts(7, 0, 12, 12, 1)
	a, err := Analyze(pages)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Analyze(pages)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated Analyze differs: %+v vs %+v", a, b)
	}
}

func TestConcentrationExample(t *testing.T) {
	pages := pagesWithCounts(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	bands, total, err := Concentration(pages, []float64{10, 50})
	if err != nil {
		t.Fatal(err)
	}
	if total != 55 {
		t.Errorf("total = %d, want 55", total)
	}
	// Top 10% is the single hottest page (10/55); top 50% is the
	// five hottest (40/55).
	if want := 10.0 / 55 * 100; !approx(bands[0].Share, want) {
		t.Errorf("Top 10%% share = %v, want %v", bands[0].Share, want)
	}
	if want := 40.0 / 55 * 100; !approx(bands[1].Share, want) {
		t.Errorf("Top 50%% share = %v, want %v", bands[1].Share, want)
	}
	if bands[0].Label != "Top 10%" || bands[1].Label != "Top 50%" {
		t.Errorf("labels = %q, %q", bands[0].Label, bands[1].Label)
	}
}

func TestConcentrationDegenerate(t *testing.T) {
	for _, test := range []struct {
		name  string
		pages []snapshot.Page
	}{
		{"empty", nil},
		{"zero total", pagesWithCounts(0, 0, 0)},
	} {
		bands, total, err := Concentration(test.pages, []float64{1, 5, 10})
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if total != 0 {
			t.Errorf("%s: total = %d, want 0", test.name, total)
		}
		for _, b := range bands {
			if b.Share != 0 {
				t.Errorf("%s: %s share = %v, want 0", test.name, b.Label, b.Share)
			}
		}
	}
}

func TestConcentrationMonotonic(t *testing.T) {
	pages := pagesWithCounts(50, 1, 1, 2, 3, 120, 0, 8, 8, 30, 2, 7)
	percentiles := []float64{1, 5, 10, 20, 30, 40, 50, 75, 100}
	bands, _, err := Concentration(pages, percentiles)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Share < bands[i-1].Share {
			t.Errorf("share decreased from %s (%v) to %s (%v)",
				bands[i-1].Label, bands[i-1].Share, bands[i].Label, bands[i].Share)
		}
	}
	if last := bands[len(bands)-1]; !approx(last.Share, 100) {
		t.Errorf("Top 100%% share = %v, want 100", last.Share)
	}
}

func TestConcentrationBadPercentile(t *testing.T) {
	pages := pagesWithCounts(1, 2, 3)
	for _, p := range []float64{0, -5, 100.5} {
		if _, _, err := Concentration(pages, []float64{p}); err == nil {
			t.Errorf("percentile %v not rejected", p)
		}
	}
}

func TestConcentrationNegative(t *testing.T) {
	if _, _, err := Concentration(pagesWithCounts(1, -2), []float64{10}); err == nil {
		t.Error("negative access count not rejected")
	}
}
