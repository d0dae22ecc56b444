// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command utilvis plots page utilization against access count for the
// baseline and optimized snapshots, faceted by variant and colored by
// page temperature. Sparse hot pages stand out as low-utilization
// outliers in the baseline panel.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/lmittmann/tint"

	"github.com/xiaguan/blitzkv-vis/snapshot"
)

func main() {
	var (
		flagBaseline  = flag.String("baseline", "baseline_snapshot.json", "read baseline snapshot from `file`")
		flagOptimized = flag.String("optimized", "optimized_snapshot.json", "read optimized snapshot from `file`")
		flagOut       = flag.String("o", "utilization_scatter.svg", "write plot to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	if err := run(*flagBaseline, *flagOptimized, *flagOut); err != nil {
		slog.Error("utilvis failed", "err", err)
		os.Exit(1)
	}
}

// pagePoint is one scatter point: a page of one variant's snapshot.
type pagePoint struct {
	Variant     string
	AccessCount float64
	Utilization float64
	Heat        string
}

func run(baselinePath, optimizedPath, outPath string) error {
	var points []pagePoint
	for _, in := range []struct {
		variant, path string
	}{
		{"baseline", baselinePath},
		{"optimized", optimizedPath},
	} {
		snap, err := snapshot.Load(in.path)
		if err != nil {
			return err
		}
		points = append(points, variantPoints(in.variant, snap)...)
	}
	if len(points) == 0 {
		return fmt.Errorf("no pages in either snapshot")
	}

	plot := gg.NewPlot(table.TableFromStructs(points))
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.FacetX{Col: "Variant"})
	plot.Add(gg.LayerPoints{
		X:     "AccessCount",
		Y:     "Utilization",
		Color: "Heat",
	})

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := plot.WriteSVG(f, 1000, 420); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote utilization scatter", "path", outPath, "points", len(points))
	return nil
}

func variantPoints(variant string, snap *snapshot.Snapshot) []pagePoint {
	points := make([]pagePoint, 0, len(snap.Pages))
	for _, p := range snap.Pages {
		heat := "cold"
		if p.IsHot {
			heat = "hot"
		}
		points = append(points, pagePoint{
			Variant:     variant,
			AccessCount: float64(p.AccessCount),
			Utilization: p.Utilization(),
			Heat:        heat,
		})
	}
	return points
}
