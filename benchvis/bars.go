// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/xiaguan/blitzkv-vis/snapshot"
)

// panels defines the four comparison panels in layout order.
var panels = []struct {
	metric, title, ylabel, format string
}{
	{snapshot.MetricThroughput, "Throughput Comparison", "Throughput (ops/sec)", "%.0f"},
	{snapshot.MetricHitRatio, "Cache Hit Ratio Comparison", "Hit Ratio", "%.3f"},
	{snapshot.MetricReadSSDOps, "SSD Read Operations Comparison", "SSD Read Operations", "%.0f"},
	{snapshot.MetricWriteSSDOps, "SSD Write Operations Comparison", "SSD Write Operations", "%.0f"},
}

// writeComparisonGrid renders all panels onto one 2x2 PNG canvas.
func writeComparisonGrid(path string, c *snapshot.Collection) error {
	const rows, cols = 2, 2
	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
	}
	for i, panel := range panels {
		p, err := comparisonPlot(c, panel.metric, panel.title, panel.ylabel, panel.format)
		if err != nil {
			return fmt.Errorf("panel %s: %w", panel.metric, err)
		}
		grid[i/cols][i%cols] = p
	}

	img := vgimg.New(12*vg.Inch, 10*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(grid, tiles, dc)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if grid[r][col] != nil {
				grid[r][col].Draw(canvases[r][col])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// comparisonPlot draws one metric as two thin side-by-side bars with a
// percent-change annotation.
func comparisonPlot(c *snapshot.Collection, metric, title, ylabel, format string) (*plot.Plot, error) {
	base, _ := c.Value("baseline", metric)
	opt, _ := c.Value("optimized", metric)

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = plot.ConstantTicks(nil)

	w := vg.Points(24)
	baseBars, err := plotter.NewBarChart(plotter.Values{base}, w)
	if err != nil {
		return nil, err
	}
	baseBars.LineStyle.Width = 0
	baseBars.Color = plotutil.Color(0)
	baseBars.Offset = -w / 2

	optBars, err := plotter.NewBarChart(plotter.Values{opt}, w)
	if err != nil {
		return nil, err
	}
	optBars.LineStyle.Width = 0
	optBars.Color = plotutil.Color(1)
	optBars.Offset = w / 2

	p.Add(plotter.NewGrid(), baseBars, optBars)
	p.Legend.Add(fmt.Sprintf("baseline (%s)", fmt.Sprintf(format, base)), baseBars)
	p.Legend.Add(fmt.Sprintf("optimized (%s)", fmt.Sprintf(format, opt)), optBars)
	p.Legend.Top = true

	maxV := math.Max(base, opt)
	if maxV <= 0 {
		maxV = 1
	}
	p.Y.Min = 0
	p.Y.Max = maxV * 1.2

	// A zero baseline makes the relative change undefined; drop the
	// annotation rather than divide by zero.
	if base != 0 {
		pct := (opt - base) / base * 100
		arrow := "▲"
		if pct < 0 {
			arrow = "▼"
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: 0, Y: maxV * 1.08}},
			Labels: []string{fmt.Sprintf("%s %+.1f%%", arrow, pct)},
		})
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}
	return p, nil
}
