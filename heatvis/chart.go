// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/xiaguan/blitzkv-vis/heat"
	"github.com/xiaguan/blitzkv-vis/snapshot"
)

// writeConcentrationChart renders the per-band access shares of both
// variants as a grouped bar chart.
func writeConcentrationChart(path string, base, opt []heat.Band) error {
	baseVals := make(plotter.Values, len(base))
	optVals := make(plotter.Values, len(opt))
	labels := make([]string, len(base))
	for i := range base {
		baseVals[i] = base[i].Share
		optVals[i] = opt[i].Share
		labels[i] = base[i].Label
	}

	p := plot.New()
	p.Title.Text = "Access Concentration in Top Pages"
	p.Y.Label.Text = "Percentage of Total Accesses (%)"
	p.Y.Min = 0
	p.Y.Max = 105

	w := vg.Points(18)
	baseBars, err := plotter.NewBarChart(baseVals, w)
	if err != nil {
		return err
	}
	baseBars.LineStyle.Width = 0
	baseBars.Color = plotutil.Color(0)
	baseBars.Offset = -w / 2

	optBars, err := plotter.NewBarChart(optVals, w)
	if err != nil {
		return err
	}
	optBars.LineStyle.Width = 0
	optBars.Color = plotutil.Color(1)
	optBars.Offset = w / 2

	p.Add(plotter.NewGrid(), baseBars, optBars)
	p.Legend.Add("baseline", baseBars)
	p.Legend.Add("optimized", optBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// writeHistogramChart renders the access-count frequency distribution
// of both snapshots over log-spaced bins on log-log axes. Pages with a
// zero access count are excluded; if neither snapshot has a positive
// count the chart is skipped and the first return is false.
func writeHistogramChart(path string, basePages, optPages []snapshot.Page) (bool, error) {
	basePos := positiveCounts(basePages)
	optPos := positiveCounts(optPages)
	if len(basePos) == 0 && len(optPos) == 0 {
		return false, nil
	}

	max := math.Max(maxOf(basePos), maxOf(optPos))
	edges := heat.LogBins(max, 20)

	p := plot.New()
	p.Title.Text = "Access Count Frequency Distribution"
	p.X.Label.Text = "Access Count"
	p.Y.Label.Text = "Number of Pages"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	series := []struct {
		name   string
		values []float64
	}{
		{"baseline", basePos},
		{"optimized", optPos},
	}
	for i, s := range series {
		if len(s.values) == 0 {
			continue
		}
		counts := heat.HistogramCounts(s.values, edges)
		var pts plotter.XYs
		for j, c := range counts {
			if c == 0 {
				// Log axes cannot place empty bins.
				continue
			}
			center := math.Sqrt(edges[j] * edges[j+1])
			pts = append(pts, plotter.XY{X: center, Y: float64(c)})
		}
		if len(pts) == 0 {
			continue
		}
		ln, sc, err := plotter.NewLinePoints(pts)
		if err != nil {
			return false, err
		}
		ln.Color = plotutil.Color(i)
		sc.Color = plotutil.Color(i)
		sc.Shape = plotutil.Shape(i)
		p.Add(ln, sc)
		p.Legend.Add(s.name, ln, sc)
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return false, err
	}
	return true, nil
}

func positiveCounts(pages []snapshot.Page) []float64 {
	var counts []float64
	for i := range pages {
		if c := pages[i].AccessCount; c > 0 {
			counts = append(counts, float64(c))
		}
	}
	return counts
}

func maxOf(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
