// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/xiaguan/blitzkv-vis/heat"
	"github.com/xiaguan/blitzkv-vis/snapshot"
)

const (
	canvasWidth  = 1200
	canvasHeight = 820

	// Page boxes are laid out on a fixed grid inside each container;
	// only the first pagesShown pages of a variant are drawn.
	pagesShown = 30
	gridCols   = 6
	boxSize    = 48
	boxGap     = 12

	coldFill      = "#aec7e8"
	hotFill       = "#ff9896"
	highlightEdge = "#d62728"
)

type container struct {
	x, y  int
	title string
}

// drawDiagram renders the two-column allocation diagram: the baseline
// container treats every page as cold, the optimized container splits
// hot pages above a dashed divider from cold pages below it. Pages in
// topIDs get a highlighted border and a frequency label.
func drawDiagram(w io.Writer, basePages, optPages []heat.SynthPage, topIDs map[int]bool, base, opt *snapshot.Result) {
	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:white")

	canvas.Text(canvasWidth/2, 40, "BlitzKV Page Allocation: Baseline vs Optimized",
		"text-anchor:middle;font-size:24px;font-family:sans-serif;font-weight:bold")

	left := container{x: 80, y: 80, title: "Baseline: single cold region"}
	right := container{x: 740, y: 80, title: "Optimized: hot / cold separation"}

	drawBaseline(canvas, left, basePages, topIDs)
	drawOptimized(canvas, right, optPages, topIDs)
	drawArrow(canvas, left, right)
	drawMetrics(canvas, base, opt)
	drawLegend(canvas)

	canvas.End()
}

func containerFrame(canvas *svg.SVG, c container, height int) {
	canvas.Roundrect(c.x, c.y, containerWidth(), height, 8, 8,
		"fill:#fafafa;stroke:#555555;stroke-width:2")
	canvas.Text(c.x+containerWidth()/2, c.y+28, c.title,
		"text-anchor:middle;font-size:16px;font-family:sans-serif;font-weight:bold")
}

func containerWidth() int {
	return gridCols*(boxSize+boxGap) + boxGap
}

// drawBaseline draws every shown page in the cold style: without
// separation, hot pages are scattered through the same region as
// everything else.
func drawBaseline(canvas *svg.SVG, c container, pages []heat.SynthPage, topIDs map[int]bool) {
	rows := (pagesShown + gridCols - 1) / gridCols
	height := 48 + rows*(boxSize+boxGap) + boxGap
	containerFrame(canvas, c, height)

	for i, p := range pages {
		if i >= pagesShown {
			break
		}
		drawPage(canvas, c.x+boxGap+(i%gridCols)*(boxSize+boxGap),
			c.y+48+(i/gridCols)*(boxSize+boxGap), p, coldFill, topIDs[p.ID])
	}
}

// drawOptimized draws hot pages above a dashed divider and cold pages
// below it. Input pages are sorted by descending frequency, so hot
// pages form a prefix.
func drawOptimized(canvas *svg.SVG, c container, pages []heat.SynthPage, topIDs map[int]bool) {
	hot := 0
	for _, p := range pages {
		if !p.Hot {
			break
		}
		hot++
	}
	hotShown := min(hot, pagesShown/2)
	coldShown := min(len(pages)-hot, pagesShown-hotShown)

	hotRows := (hotShown + gridCols - 1) / gridCols
	coldRows := (coldShown + gridCols - 1) / gridCols
	dividerY := c.y + 48 + hotRows*(boxSize+boxGap) + boxGap/2
	height := 48 + (hotRows+coldRows)*(boxSize+boxGap) + 2*boxGap
	containerFrame(canvas, c, height)

	for i := 0; i < hotShown; i++ {
		drawPage(canvas, c.x+boxGap+(i%gridCols)*(boxSize+boxGap),
			c.y+48+(i/gridCols)*(boxSize+boxGap), pages[i], hotFill, topIDs[pages[i].ID])
	}
	canvas.Line(c.x+8, dividerY, c.x+containerWidth()-8, dividerY,
		"stroke:#555555;stroke-width:2;stroke-dasharray:8,6")
	canvas.Text(c.x+containerWidth()-12, dividerY-6, "hot ↑ / cold ↓",
		"text-anchor:end;font-size:11px;font-family:sans-serif;fill:#555555")

	for i := 0; i < coldShown; i++ {
		p := pages[hot+i]
		drawPage(canvas, c.x+boxGap+(i%gridCols)*(boxSize+boxGap),
			dividerY+boxGap/2+boxGap+(i/gridCols)*(boxSize+boxGap), p, coldFill, topIDs[p.ID])
	}
}

func drawPage(canvas *svg.SVG, x, y int, p heat.SynthPage, fill string, highlight bool) {
	style := fmt.Sprintf("fill:%s;stroke:#333333;stroke-width:1", fill)
	if highlight {
		style = fmt.Sprintf("fill:%s;stroke:%s;stroke-width:3", fill, highlightEdge)
	}
	// The page's drawn extent tracks its synthetic size class.
	side := boxSize*p.Size/10 + boxSize/2
	if side > boxSize {
		side = boxSize
	}
	canvas.Rect(x+(boxSize-side)/2, y+(boxSize-side)/2, side, side, style)
	if highlight {
		canvas.Text(x+boxSize/2, y+boxSize+10, fmt.Sprintf("%.0f", p.Freq),
			"text-anchor:middle;font-size:10px;font-family:sans-serif;fill:#d62728")
	}
}

func drawArrow(canvas *svg.SVG, left, right container) {
	x1 := left.x + containerWidth() + 20
	x2 := right.x - 20
	y := 320
	canvas.Line(x1, y, x2-14, y, "stroke:#333333;stroke-width:3")
	canvas.Polygon([]int{x2 - 14, x2 - 14, x2}, []int{y - 8, y + 8, y},
		"fill:#333333")
	canvas.Text((x1+x2)/2, y-34, "frequency-aware",
		"text-anchor:middle;font-size:13px;font-family:sans-serif")
	canvas.Text((x1+x2)/2, y-18, "placement",
		"text-anchor:middle;font-size:13px;font-family:sans-serif")
	canvas.Text((x1+x2)/2, y+24, "hot pages stay cached,",
		"text-anchor:middle;font-size:11px;font-family:sans-serif;fill:#555555")
	canvas.Text((x1+x2)/2, y+38, "cold pages go to SSD",
		"text-anchor:middle;font-size:11px;font-family:sans-serif;fill:#555555")
}

func drawMetrics(canvas *svg.SVG, base, opt *snapshot.Result) {
	y := canvasHeight - 140
	canvas.Roundrect(80, y, canvasWidth-160, 100, 8, 8,
		"fill:#f5f5f5;stroke:#555555;stroke-width:1")
	canvas.Text(100, y+26, "Run metrics (baseline → optimized)",
		"font-size:14px;font-family:sans-serif;font-weight:bold")

	lines := []string{
		fmt.Sprintf("Throughput: %.0f → %.0f ops/s", base.Throughput, opt.Throughput),
		fmt.Sprintf("Hit ratio: %.2f%% → %.2f%%", base.HitRatio*100, opt.HitRatio*100),
		fmt.Sprintf("SSD reads: %d → %d", base.ReadSSDOps, opt.ReadSSDOps),
		fmt.Sprintf("SSD writes: %d → %d", base.WriteSSDOps, opt.WriteSSDOps),
	}
	for i, line := range lines {
		canvas.Text(100+(i%2)*540, y+50+(i/2)*24, line,
			"font-size:13px;font-family:monospace")
	}
}

func drawLegend(canvas *svg.SVG) {
	y := canvasHeight - 170
	canvas.Rect(80, y, 14, 14, fmt.Sprintf("fill:%s;stroke:#333333", coldFill))
	canvas.Text(100, y+12, "cold page", "font-size:12px;font-family:sans-serif")
	canvas.Rect(190, y, 14, 14, fmt.Sprintf("fill:%s;stroke:#333333", hotFill))
	canvas.Text(210, y+12, "hot page", "font-size:12px;font-family:sans-serif")
	canvas.Rect(300, y, 14, 14,
		fmt.Sprintf("fill:white;stroke:%s;stroke-width:3", highlightEdge))
	canvas.Text(320, y+12, "top-5 hottest (labelled with frequency)",
		"font-size:12px;font-family:sans-serif")
}
