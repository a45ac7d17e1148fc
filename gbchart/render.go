// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"html"
	"io"
	"math"

	"github.com/aclements/groupedbar/barchart"
	svg "github.com/ajstarks/svgo"
)

const (
	axisStyle  = "stroke:black;stroke-width:1px;shape-rendering:crispEdges"
	tickSize   = 6
	labelInset = 9
	titleStyle = "font-weight:bold"
)

// px rounds a layout coordinate to a whole pixel.
func px(x float64) int {
	return int(math.Round(x))
}

// renderSVG draws the chart of m to w. The markup follows the usual
// margin convention: everything is drawn in a group translated by the
// left and top margins, with the value axis along the bottom of the
// plot area and category labels to the left of it.
func renderSVG(w io.Writer, m *barchart.Model) {
	cfg, g := m.Config(), m.Scales()

	canvas := svg.New(w)
	canvas.Start(px(cfg.DivWidth), px(g.TotalHeight), `class="category-chart"`)
	canvas.Group(`class="margin axis"`, fmt.Sprintf(`transform="translate(%d,%d)"`, px(g.Margin.Left), px(g.Margin.Top)))

	// Value axis.
	canvas.Group(`class="x axis"`, fmt.Sprintf(`transform="translate(0,%d)"`, px(g.SVGHeight)))
	canvas.Line(0, 0, px(g.SVGWidth), 0, axisStyle)
	for _, tick := range g.Value.Ticks() {
		x := px(tick.Pos)
		canvas.Line(x, 0, x, tickSize, axisStyle)
		canvas.Text(x, tickSize+12, tick.Label, "text-anchor:middle")
	}
	canvas.Gend()

	// Bars and category labels.
	canvas.Group(`class="y axis"`)
	for _, bar := range g.Bars() {
		canvas.Group(`class="bar"`, `data-key="`+html.EscapeString(bar.Key)+`"`)
		canvas.Title(m.BarTooltip(bar.Row))
		canvas.Rect(px(bar.X), px(bar.Y), px(bar.Width), px(bar.Height), "fill:"+m.BarColor(bar.Row))
		canvas.Gend()
	}
	canvas.Line(0, 0, 0, px(g.SVGHeight), axisStyle)
	half := g.Category.Bandwidth() / 2
	for _, c := range m.Categories() {
		y, _ := g.Category.Map(c)
		canvas.Text(-labelInset, px(y+half), m.CategoryTitle(c), "text-anchor:end;dominant-baseline:middle;fill:"+m.LabelColor(c))
	}
	canvas.Gend()

	canvas.Group(`class="category-chart-title"`)
	canvas.Title(barchart.TitleTooltip)
	canvas.Text(0, -5, cfg.Title, titleStyle)
	canvas.Gend()

	canvas.Gend()
	canvas.End()
}
