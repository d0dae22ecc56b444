// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/xiaguan/blitzkv-vis/heat"
	"github.com/xiaguan/blitzkv-vis/snapshot"
)

const (
	coldColor = "#1f77b4"
	hotColor  = "#d62728"
)

// temperatureBar charts hot and cold page counts per variant as
// stacked bars.
func temperatureBar(base, opt *snapshot.Snapshot) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Page Temperature Distribution",
			Subtitle: headlineSubtitle(base, opt),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "pages"}),
	)
	bar.SetXAxis([]string{"baseline", "optimized"}).
		AddSeries("hot pages", []opts.BarData{
			{Value: base.HotPages()}, {Value: opt.HotPages()},
		}, charts.WithItemStyleOpts(opts.ItemStyle{Color: hotColor})).
		AddSeries("cold pages", []opts.BarData{
			{Value: base.ColdPages()}, {Value: opt.ColdPages()},
		}, charts.WithItemStyleOpts(opts.ItemStyle{Color: coldColor}))
	bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "pages"}))
	return bar
}

func headlineSubtitle(base, opt *snapshot.Snapshot) string {
	if base.HitRatio == 0 || base.SSD.Reads == 0 {
		return ""
	}
	return fmt.Sprintf("hit ratio %.1f%% → %.1f%%, SSD reads %d → %d",
		base.HitRatio*100, opt.HitRatio*100, base.SSD.Reads, opt.SSD.Reads)
}

// freqDistributionLine charts the histogram of object access
// frequencies for both variants.
func freqDistributionLine(base, opt *snapshot.Snapshot) *charts.Line {
	edges := heat.UniformBins(0, 20, 20)
	x := make([]string, len(edges)-1)
	for i := range x {
		x[i] = fmt.Sprintf("%.0f", edges[i])
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Access Frequency Distribution"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "access frequency"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "objects"}),
	)
	line.SetXAxis(x).
		AddSeries("baseline", lineData(heat.HistogramCounts(objectFreqs(base), edges)),
			charts.WithLineStyleOpts(opts.LineStyle{Color: coldColor})).
		AddSeries("optimized", lineData(heat.HistogramCounts(objectFreqs(opt), edges)),
			charts.WithLineStyleOpts(opts.LineStyle{Color: hotColor}))
	return line
}

func objectFreqs(s *snapshot.Snapshot) []float64 {
	var freqs []float64
	for i := range s.Pages {
		for _, obj := range s.Pages[i].Objects {
			freqs = append(freqs, obj.Freq)
		}
	}
	return freqs
}

func lineData(counts []int) []opts.LineData {
	data := make([]opts.LineData, len(counts))
	for i, c := range counts {
		data[i] = opts.LineData{Value: c}
	}
	return data
}

// utilizationBar charts per-page utilization for one variant, pages
// in page-id order, hot pages colored distinctly.
func utilizationBar(name string, s *snapshot.Snapshot) *charts.Bar {
	pages := make([]snapshot.Page, len(s.Pages))
	copy(pages, s.Pages)
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageID < pages[j].PageID })

	x := make([]string, len(pages))
	data := make([]opts.BarData, len(pages))
	for i := range pages {
		x[i] = fmt.Sprintf("%d", pages[i].PageID)
		color := coldColor
		if pages[i].IsHot {
			color = hotColor
		}
		data[i] = opts.BarData{
			Value:     pages[i].Utilization(),
			ItemStyle: &opts.ItemStyle{Color: color},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Page Utilization (%s)", name)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "page id"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "utilization", Max: 1}),
	)
	bar.SetXAxis(x).AddSeries(name, data)
	return bar
}

// temperatureGrid lays the pages of one variant out on a square grid
// ordered by (is_hot, access_count) descending and colors each cell by
// its access count.
func temperatureGrid(name string, s *snapshot.Snapshot) *charts.HeatMap {
	pages := make([]snapshot.Page, len(s.Pages))
	copy(pages, s.Pages)
	sort.Slice(pages, func(i, j int) bool {
		if pages[i].IsHot != pages[j].IsHot {
			return pages[i].IsHot
		}
		return pages[i].AccessCount > pages[j].AccessCount
	})

	side := int(math.Ceil(math.Sqrt(float64(len(pages)))))
	if side < 1 {
		side = 1
	}
	axis := make([]string, side)
	for i := range axis {
		axis[i] = fmt.Sprintf("%d", i)
	}

	var maxCount int64
	data := make([]opts.HeatMapData, 0, len(pages))
	for i := range pages {
		if i >= side*side {
			break
		}
		row, col := i/side, i%side
		data = append(data, opts.HeatMapData{
			Value: [3]interface{}{col, side - row - 1, pages[i].AccessCount},
		})
		if pages[i].AccessCount > maxCount {
			maxCount = pages[i].AccessCount
		}
	}
	if maxCount < 1 {
		maxCount = 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Page Temperature Grid (%s)", name)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: axis}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: axis}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange: &opts.VisualMapInRange{
				Color: []string{coldColor, "#ffffff", hotColor},
			},
		}),
	)
	hm.SetXAxis(axis).AddSeries(name, data)
	return hm
}
