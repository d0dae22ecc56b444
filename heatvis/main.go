// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heatvis compares the page heat distribution of two BlitzKV
// benchmark snapshots.
//
// heatvis reads a baseline and an optimized snapshot produced by the
// benchmark harness, computes access-concentration statistics for
// both, and writes a grouped concentration bar chart and a log-log
// access-count histogram as PNGs. A text summary (per-band shares,
// totals, and Gini coefficients) is printed to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aclements/go-moremath/stats"
	"github.com/lmittmann/tint"

	"github.com/xiaguan/blitzkv-vis/heat"
	"github.com/xiaguan/blitzkv-vis/snapshot"
)

// concentrationPercentiles is the band set the harness documentation
// uses for heat reports.
var concentrationPercentiles = []float64{1, 5, 10, 20, 30, 40}

func main() {
	var (
		flagBaseline  = flag.String("baseline", "baseline_vis.json", "read baseline snapshot from `file`")
		flagOptimized = flag.String("optimized", "optimized_vis.json", "read optimized snapshot from `file`")
		flagOut       = flag.String("o", ".", "write charts to `dir`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	if err := run(*flagBaseline, *flagOptimized, *flagOut); err != nil {
		slog.Error("heatvis failed", "err", err)
		os.Exit(1)
	}
}

func run(basePath, optPath, outDir string) error {
	base, err := snapshot.Load(basePath)
	if err != nil {
		return err
	}
	opt, err := snapshot.Load(optPath)
	if err != nil {
		return err
	}

	baseSum, err := heat.Analyze(base.Pages)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", basePath, err)
	}
	optSum, err := heat.Analyze(opt.Pages)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", optPath, err)
	}

	baseBands, _, err := heat.Concentration(base.Pages, concentrationPercentiles)
	if err != nil {
		return fmt.Errorf("concentration of %s: %w", basePath, err)
	}
	optBands, _, err := heat.Concentration(opt.Pages, concentrationPercentiles)
	if err != nil {
		return fmt.Errorf("concentration of %s: %w", optPath, err)
	}

	concPath := filepath.Join(outDir, "heat_concentration.png")
	if err := writeConcentrationChart(concPath, baseBands, optBands); err != nil {
		return err
	}
	slog.Info("wrote concentration chart", "path", concPath)

	histPath := filepath.Join(outDir, "heat_histogram.png")
	wrote, err := writeHistogramChart(histPath, base.Pages, opt.Pages)
	if err != nil {
		return err
	}
	if wrote {
		slog.Info("wrote access-count histogram", "path", histPath)
	} else {
		slog.Warn("no positive access counts in either snapshot; skipping histogram")
	}

	printSummary(os.Stdout, baseSum, optSum, baseBands, optBands)
	return nil
}

func printSummary(w io.Writer, baseSum, optSum heat.Summary, baseBands, optBands []heat.Band) {
	fmt.Fprintf(w, "Access concentration (%% of total accesses):\n")
	for i := range baseBands {
		fmt.Fprintf(w, "  %s: baseline=%.2f%% optimized=%.2f%%\n",
			baseBands[i].Label, baseBands[i].Share, optBands[i].Share)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "baseline:  pages=%d accesses=%d mean/page=%.1f gini=%.3f\n",
		baseSum.TotalPages, baseSum.TotalAccesses, meanAccesses(baseSum), baseSum.Gini)
	fmt.Fprintf(w, "optimized: pages=%d accesses=%d mean/page=%.1f gini=%.3f\n",
		optSum.TotalPages, optSum.TotalAccesses, meanAccesses(optSum), optSum.Gini)
}

func meanAccesses(sum heat.Summary) float64 {
	if sum.TotalPages == 0 {
		return 0
	}
	counts := make([]float64, len(sum.Pages))
	for i := range sum.Pages {
		counts[i] = float64(sum.Pages[i].AccessCount)
	}
	return stats.Mean(counts)
}
