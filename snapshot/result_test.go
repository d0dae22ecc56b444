// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const resultsDoc = `[
	{"variant": "baseline", "throughput": 1200.5, "hit_ratio": 0.72,
	 "read_ssd_ops": 90000, "write_ssd_ops": 41000,
	 "freq_p50": 1.2, "freq_p95": 6.5, "freq_p99": 18.0, "freq_max": 250.0},
	{"variant": "optimized", "throughput": 1550.0, "hit_ratio": 0.91,
	 "read_ssd_ops": 52000, "write_ssd_ops": 39000,
	 "freq_p50": 1.1, "freq_p95": 7.0, "freq_p99": 21.0, "freq_max": 300.0}
]`

func testResults(t *testing.T) []Result {
	t.Helper()
	rs, err := ReadResults(strings.NewReader(resultsDoc))
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

func TestReadResults(t *testing.T) {
	rs := testResults(t)
	if len(rs) != 2 {
		t.Fatalf("got %d results, want 2", len(rs))
	}
	want := Result{
		Variant: "baseline", Throughput: 1200.5, HitRatio: 0.72,
		ReadSSDOps: 90000, WriteSSDOps: 41000,
		FreqP50: 1.2, FreqP95: 6.5, FreqP99: 18.0, FreqMax: 250.0,
	}
	if !reflect.DeepEqual(rs[0], want) {
		t.Errorf("rs[0] = %+v, want %+v", rs[0], want)
	}
}

func TestFindVariant(t *testing.T) {
	rs := testResults(t)
	r, err := FindVariant(rs, "optimized")
	if err != nil {
		t.Fatal(err)
	}
	if r.Throughput != 1550.0 {
		t.Errorf("optimized throughput = %v, want 1550", r.Throughput)
	}

	if _, err := FindVariant(rs, "turbo"); !errors.Is(err, ErrVariantNotFound) {
		t.Errorf("missing variant: err = %v, want ErrVariantNotFound", err)
	}
}

func TestCollect(t *testing.T) {
	c := Collect(testResults(t))

	if want := []string{"baseline", "optimized"}; !reflect.DeepEqual(c.Variants, want) {
		t.Errorf("Variants = %v, want %v", c.Variants, want)
	}
	if !reflect.DeepEqual(c.Metrics, MetricNames) {
		t.Errorf("Metrics = %v, want %v", c.Metrics, MetricNames)
	}

	if v, ok := c.Value("baseline", MetricHitRatio); !ok || v != 0.72 {
		t.Errorf("Value(baseline, hit_ratio) = %v, %v", v, ok)
	}
	if _, ok := c.Value("baseline", "no-such-metric"); ok {
		t.Error("unknown metric reported as present")
	}

	want := []float64{90000, 52000}
	if got := c.Series(MetricReadSSDOps); !reflect.DeepEqual(got, want) {
		t.Errorf("Series(read_ssd_ops) = %v, want %v", got, want)
	}
}

func TestCollectionAddOverrides(t *testing.T) {
	c := NewCollection()
	key := MetricKey{"baseline", MetricThroughput}
	c.Add(key, 10)
	c.Add(key, 20)
	if v, _ := c.Value("baseline", MetricThroughput); v != 20 {
		t.Errorf("value after override = %v, want 20", v)
	}
	if len(c.Keys) != 1 {
		t.Errorf("len(Keys) = %d, want 1", len(c.Keys))
	}
}
