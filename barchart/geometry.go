// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/groupedbar/internal/cssunit"
)

// categoryPadding is the fraction of each category band left empty.
const categoryPadding = 0.05

// A LengthFunc converts a length expression, such as "2.5ch", to
// pixels.
type LengthFunc func(length string) (float64, error)

// ScaleOptions controls BuildScales.
type ScaleOptions struct {
	LogScale       bool
	ShowPercentage bool

	// Sum indicates that the chart displays SumGroup bars, which
	// count as one more group when sizing bars.
	Sum bool

	// Length converts bar height expressions to pixels. If nil,
	// the default font metrics of package cssunit are used.
	Length LengthFunc
}

// BarHeight returns the height of a single bar, as a length
// expression, for a chart with n groups per category. Bars shrink
// linearly from 2.5ch for one group to 0.5ch for 11 or more.
func BarHeight(n int) string {
	t := (math.Min(math.Max(float64(n), 1), 11) - 1) / 10
	ch := 2.5 + (0.5-2.5)*t
	ch = math.Round(ch*1e4) / 1e4
	return strconv.FormatFloat(ch, 'f', -1, 64) + "ch"
}

// Geometry is the pixel layout of a chart. Vertical positions are
// relative to the top of the plot area, which is offset from the
// chart's origin by Margin.
type Geometry struct {
	Value    *ValueScale
	Category *BandScale

	groups  *BandScale
	refs    []GroupRef
	rows    []DerivedRow
	percent bool

	Margin Margin

	// BarHeight is the nominal height of one bar, before band
	// rounding.
	BarHeight float64

	// SVGWidth and SVGHeight are the dimensions of the plot area.
	SVGWidth, SVGHeight float64

	// TotalHeight is SVGHeight plus the top and bottom margins.
	TotalHeight float64
}

// BuildScales computes the layout of rows, as returned by Derive,
// in a chart divWidth pixels wide with the given margins.
//
// Categories are stacked top to bottom in row order. Each category
// band is divided into one sub-band per group present in rows, in
// order of first appearance. Bar heights are sized for groups, plus
// the sum group if opts.Sum is set.
func BuildScales(rows []DerivedRow, groups []Group, margin Margin, divWidth float64, opts ScaleOptions) (*Geometry, error) {
	svgWidth := divWidth - margin.Left - margin.Right
	if svgWidth < 0 {
		return nil, fmt.Errorf("%w: plot width %g is negative", ErrInvalidConfig, svgWidth)
	}

	length := opts.Length
	if length == nil {
		length = cssunit.ToPx
	}
	groupCount := len(groups)
	if opts.Sum {
		groupCount++
	}
	barHeight, err := length(BarHeight(groupCount))
	if err != nil {
		return nil, fmt.Errorf("bar height: %w", err)
	}

	categories := Categories(rows)
	svgHeight := float64(len(categories)) * barHeight * float64(groupCount)

	g := &Geometry{
		Category:    NewBandScale(categories, svgHeight, categoryPadding),
		rows:        rows,
		percent:     opts.ShowPercentage,
		Margin:      margin,
		BarHeight:   barHeight,
		SVGWidth:    svgWidth,
		SVGHeight:   svgHeight,
		TotalHeight: margin.Top + svgHeight + margin.Bottom,
	}

	seen := make(map[GroupRef]bool)
	var keys []string
	hi := math.NaN()
	for _, r := range rows {
		if !seen[r.Group] {
			seen[r.Group] = true
			g.refs = append(g.refs, r.Group)
			keys = append(keys, r.Group.key())
		}
		if m := r.Measure(opts.ShowPercentage); m > hi || math.IsNaN(hi) {
			hi = m
		}
	}
	g.groups = NewBandScale(keys, g.Category.Bandwidth(), 0)

	g.Value, err = newValueScale(hi, svgWidth, opts.LogScale, opts.ShowPercentage)
	if err != nil {
		return nil, fmt.Errorf("value scale: %w", err)
	}
	return g, nil
}

// Groups returns the groups present in the chart in sub-band order.
func (g *Geometry) Groups() []GroupRef {
	return append([]GroupRef(nil), g.refs...)
}

// GroupOffset returns the offset of group's sub-band from the start
// of each category band.
func (g *Geometry) GroupOffset(group GroupRef) (float64, bool) {
	return g.groups.Map(group.key())
}

// GroupBandwidth returns the height of each group sub-band, which is
// the drawn height of every bar.
func (g *Geometry) GroupBandwidth() float64 {
	return g.groups.Bandwidth()
}

// A Bar is the rectangle drawn for one derived row.
type Bar struct {
	Key                 string
	X, Y, Width, Height float64
	Row                 DerivedRow
}

// Bars returns the rectangle of every row, in row order. A bar that
// would extend left of the axis, such as a negative value or a value
// below the floor of a log scale, has zero width.
func (g *Geometry) Bars() []Bar {
	bars := make([]Bar, 0, len(g.rows))
	for _, r := range g.rows {
		y0, _ := g.Category.Map(r.Category)
		y1, _ := g.GroupOffset(r.Group)
		w := g.Value.Map(r.Measure(g.percent))
		if !(w > 0) {
			w = 0
		}
		bars = append(bars, Bar{
			Key:    r.Key(),
			Y:      y0 + y1,
			Width:  w,
			Height: g.GroupBandwidth(),
			Row:    r,
		})
	}
	return bars
}
