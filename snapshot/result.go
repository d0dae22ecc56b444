// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Result summarizes one benchmark variant: a single element of the
// top-level array in results.json.
type Result struct {
	Variant     string  `json:"variant"`
	Throughput  float64 `json:"throughput"`
	HitRatio    float64 `json:"hit_ratio"`
	ReadSSDOps  int64   `json:"read_ssd_ops"`
	WriteSSDOps int64   `json:"write_ssd_ops"`

	// Quantiles of the access-frequency distribution observed by
	// the cache during the run.
	FreqP50 float64 `json:"freq_p50"`
	FreqP95 float64 `json:"freq_p95"`
	FreqP99 float64 `json:"freq_p99"`
	FreqMax float64 `json:"freq_max"`
}

// ErrVariantNotFound is returned by FindVariant when no record in the
// results file carries the requested variant name.
var ErrVariantNotFound = errors.New("variant not found")

// ReadResults decodes a results document from r.
func ReadResults(r io.Reader) ([]Result, error) {
	var rs []Result
	if err := json.NewDecoder(r).Decode(&rs); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	return rs, nil
}

// LoadResults reads the results file at path.
func LoadResults(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rs, err := ReadResults(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// FindVariant returns the result record named variant.
func FindVariant(results []Result, variant string) (*Result, error) {
	for i := range results {
		if results[i].Variant == variant {
			return &results[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", variant, ErrVariantNotFound)
}
