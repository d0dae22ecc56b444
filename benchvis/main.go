// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchvis renders baseline-vs-optimized comparison charts
// from a BlitzKV results file.
//
// benchvis reads results.json, picks out the baseline and optimized
// variant records, and writes one PNG with four aligned panels:
// throughput, cache hit ratio, SSD read operations, and SSD write
// operations. Each panel shows the two variants side by side with the
// relative change annotated above the bars.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/xiaguan/blitzkv-vis/snapshot"
)

func main() {
	var (
		flagResults = flag.String("results", "results.json", "read variant results from `file`")
		flagOut     = flag.String("o", "benchmark_comparison.png", "write chart to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	if err := run(*flagResults, *flagOut); err != nil {
		slog.Error("benchvis failed", "err", err)
		os.Exit(1)
	}
}

func run(resultsPath, outPath string) error {
	results, err := snapshot.LoadResults(resultsPath)
	if err != nil {
		return err
	}
	c := snapshot.Collect(results)
	for _, variant := range []string{"baseline", "optimized"} {
		if !c.VariantSet[variant] {
			return fmt.Errorf("%s: no %q record", resultsPath, variant)
		}
	}

	if err := writeComparisonGrid(outPath, c); err != nil {
		return err
	}
	slog.Info("wrote comparison chart", "path", outPath, "variants", len(c.Variants))
	return nil
}
