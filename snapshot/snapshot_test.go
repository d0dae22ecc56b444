// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	const doc = `{
		"hit_ratio": 0.85,
		"ssd_metrics": {"reads": 120, "writes": 45},
		"pages": [
			{"page_id": 0, "access_count": 7, "is_hot": true, "free_space": 1024,
			 "objects": [{"key": "a", "freq": 3.5}]},
			{"page_id": 1, "is_hot": false, "free_space": 4096}
		]
	}`
	s, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := &Snapshot{
		HitRatio: 0.85,
		SSD:      SSDMetrics{Reads: 120, Writes: 45},
		Pages: []Page{
			{PageID: 0, AccessCount: 7, IsHot: true, FreeSpace: 1024,
				Objects: []Object{{Key: "a", Freq: 3.5}}},
			// access_count absent defaults to 0.
			{PageID: 1, FreeSpace: 4096},
		},
	}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("Read = %+v, want %+v", s, want)
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader(`{"pages": [`)); err == nil {
		t.Error("malformed document not rejected")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("testdata/no-such-file.json"); err == nil {
		t.Error("missing file not reported")
	}
}

func TestUtilization(t *testing.T) {
	for _, test := range []struct {
		free int
		want float64
	}{
		{0, 1},
		{4096, 0},
		{1024, 0.75},
		{2048, 0.5},
		// Out-of-range free_space clamps instead of leaving the
		// unit interval.
		{-100, 1},
		{5000, 0},
	} {
		p := Page{FreeSpace: test.free}
		if got := p.Utilization(); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Utilization(free=%d) = %v, want %v", test.free, got, test.want)
		}
	}
}

func TestHotColdPages(t *testing.T) {
	s := &Snapshot{Pages: []Page{
		{PageID: 0, IsHot: true},
		{PageID: 1},
		{PageID: 2, IsHot: true},
		{PageID: 3},
		{PageID: 4},
	}}
	if got := s.HotPages(); got != 2 {
		t.Errorf("HotPages = %d, want 2", got)
	}
	if got := s.ColdPages(); got != 3 {
		t.Errorf("ColdPages = %d, want 3", got)
	}
}
