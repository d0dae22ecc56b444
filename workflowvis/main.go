// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command workflowvis draws the hot/cold allocation workflow diagram
// as an SVG.
//
// The results file only carries distribution summaries, so the
// diagram is built from synthetic pages sampled from each variant's
// frequency quantiles: the baseline column treats effectively every
// page as cold, while the optimized column separates hot pages from
// cold ones. Output is deterministic for a fixed seed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/lmittmann/tint"

	"github.com/xiaguan/blitzkv-vis/heat"
	"github.com/xiaguan/blitzkv-vis/snapshot"
)

// Hot-classification thresholds mirror the allocator configurations
// under comparison: the baseline threshold is far above any observed
// frequency, the optimized one catches everything accessed more than
// once.
const (
	baselineHotThreshold  = 40000
	optimizedHotThreshold = 2
)

func main() {
	var (
		flagResults = flag.String("results", "results.json", "read variant results from `file`")
		flagOut     = flag.String("o", "workflow_diagram.svg", "write diagram to `file`")
		flagCount   = flag.Int("n", 100, "sample `count` synthetic pages per variant")
		flagSeed    = flag.Int64("seed", 1, "random `seed` for page sampling")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	if err := run(*flagResults, *flagOut, *flagCount, *flagSeed); err != nil {
		slog.Error("workflowvis failed", "err", err)
		os.Exit(1)
	}
}

func run(resultsPath, outPath string, count int, seed int64) error {
	results, err := snapshot.LoadResults(resultsPath)
	if err != nil {
		return err
	}
	base, err := snapshot.FindVariant(results, "baseline")
	if err != nil {
		return fmt.Errorf("%s: %w", resultsPath, err)
	}
	opt, err := snapshot.FindVariant(results, "optimized")
	if err != nil {
		return fmt.Errorf("%s: %w", resultsPath, err)
	}

	rng := rand.New(rand.NewSource(seed))
	basePages := heat.SynthPages(heat.QuantilesOf(*base), count, baselineHotThreshold, rng)
	optPages := heat.SynthPages(heat.QuantilesOf(*opt), count, optimizedHotThreshold, rng)

	// Highlight the five hottest optimized pages in both columns.
	topIDs := make(map[int]bool)
	for _, p := range optPages[:min(5, len(optPages))] {
		topIDs[p.ID] = true
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	drawDiagram(f, basePages, optPages, topIDs, base, opt)
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote workflow diagram", "path", outPath, "pages_per_variant", count)
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
