// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dashvis builds an interactive HTML dashboard comparing two
// BlitzKV benchmark snapshots.
//
// The dashboard holds four chart groups: hot/cold page counts per
// variant, the object access-frequency distribution, per-page
// utilization bars, and a page-temperature grid heatmap. All charts
// are written into a single self-contained HTML file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/xiaguan/blitzkv-vis/snapshot"
)

func main() {
	var (
		flagBaseline  = flag.String("baseline", "baseline_vis.json", "read baseline snapshot from `file`")
		flagOptimized = flag.String("optimized", "optimized_vis.json", "read optimized snapshot from `file`")
		flagOut       = flag.String("o", "performance_dashboard.html", "write dashboard to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	if err := run(*flagBaseline, *flagOptimized, *flagOut); err != nil {
		slog.Error("dashvis failed", "err", err)
		os.Exit(1)
	}
}

type renderer interface {
	Render(w io.Writer) error
}

func run(basePath, optPath, outPath string) error {
	base, err := snapshot.Load(basePath)
	if err != nil {
		return err
	}
	opt, err := snapshot.Load(optPath)
	if err != nil {
		return err
	}

	logHeadline(base, opt)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}

	charts := []renderer{
		temperatureBar(base, opt),
		freqDistributionLine(base, opt),
		utilizationBar("baseline", base),
		utilizationBar("optimized", opt),
		temperatureGrid("baseline", base),
		temperatureGrid("optimized", opt),
	}
	for _, c := range charts {
		if err := c.Render(f); err != nil {
			f.Close()
			return fmt.Errorf("rendering dashboard: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote dashboard", "path", outPath,
		"baseline_pages", len(base.Pages), "optimized_pages", len(opt.Pages))
	return nil
}

func logHeadline(base, opt *snapshot.Snapshot) {
	if base.HitRatio != 0 {
		slog.Info("cache hit ratio",
			"baseline", base.HitRatio, "optimized", opt.HitRatio,
			"change_pct", (opt.HitRatio-base.HitRatio)/base.HitRatio*100)
	}
	if base.SSD.Reads != 0 {
		slog.Info("ssd reads",
			"baseline", base.SSD.Reads, "optimized", opt.SSD.Reads,
			"reduction_pct", float64(base.SSD.Reads-opt.SSD.Reads)/float64(base.SSD.Reads)*100)
	}
}
