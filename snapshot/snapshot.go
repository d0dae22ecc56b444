// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snapshot reads BlitzKV benchmark result files.
//
// The benchmark harness emits two kinds of JSON documents: page-level
// snapshots (baseline_vis.json, optimized_vis.json) that record the
// state of every SSD page at the end of a run, and a results file
// (results.json) that holds one summary record per benchmark variant.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// PageSize is the fixed BlitzKV page size in bytes. Page utilization
// is derived from free_space against this size.
const PageSize = 4096

// Object is a single key resident on a page, together with the access
// frequency the cache estimated for it.
type Object struct {
	Key  string  `json:"key"`
	Freq float64 `json:"freq"`
}

// Page records the state of one SSD page at the end of a benchmark
// run. AccessCount is zero when the harness omits the field.
type Page struct {
	PageID      int      `json:"page_id"`
	AccessCount int64    `json:"access_count"`
	IsHot       bool     `json:"is_hot"`
	FreeSpace   int      `json:"free_space"`
	Objects     []Object `json:"objects"`
}

// Utilization returns the used fraction of the page, clamped to
// [0, 1].
func (p *Page) Utilization() float64 {
	u := 1 - float64(p.FreeSpace)/PageSize
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// SSDMetrics counts the physical SSD operations issued during a run.
type SSDMetrics struct {
	Reads  int64 `json:"reads"`
	Writes int64 `json:"writes"`
}

// Snapshot is a page-level dump of the store taken after a benchmark
// run.
type Snapshot struct {
	HitRatio float64    `json:"hit_ratio"`
	SSD      SSDMetrics `json:"ssd_metrics"`
	Pages    []Page     `json:"pages"`
}

// HotPages returns the number of pages the cache classified as hot.
func (s *Snapshot) HotPages() int {
	n := 0
	for i := range s.Pages {
		if s.Pages[i].IsHot {
			n++
		}
	}
	return n
}

// ColdPages returns the number of pages not classified as hot.
func (s *Snapshot) ColdPages() int {
	return len(s.Pages) - s.HotPages()
}

// Read decodes a snapshot document from r.
func Read(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &s, nil
}

// Load reads the snapshot file at path.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
