// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	// UnselectedColor is the fill of bars and labels of categories
	// that are not selected.
	UnselectedColor = "gray"

	// SelectedLabelColor is the color of selected category labels.
	SelectedLabelColor = "white"

	// TitleTooltip is the hint shown on the chart title.
	TitleTooltip = "Click title to toggle between alphabetical and numerical sorting."
)

// A Sink receives the events of a chart.
type Sink interface {
	// SelectionChanged is called with the proposed new selection
	// after a click changes it. The host decides whether to apply
	// it.
	SelectionChanged(newSelection []string)

	// TitleActivated is called when the chart title is clicked.
	// Hosts conventionally toggle Config.AlphaOrder.
	TitleActivated()
}

// SinkFuncs adapts a pair of functions to a Sink. Either may be nil.
type SinkFuncs struct {
	OnSelectionChanged func(newSelection []string)
	OnTitleActivated   func()
}

func (f SinkFuncs) SelectionChanged(newSelection []string) {
	if f.OnSelectionChanged != nil {
		f.OnSelectionChanged(newSelection)
	}
}

func (f SinkFuncs) TitleActivated() {
	if f.OnTitleActivated != nil {
		f.OnTitleActivated()
	}
}

// An Option configures a Model.
type Option func(*Model)

// WithLogger logs emitted events to l at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// WithLength sets the function used to convert bar heights to
// pixels.
func WithLength(f LengthFunc) Option {
	return func(m *Model) {
		m.length = f
	}
}

// Model is one render of a chart: the derived rows and geometry of a
// Config, its display rules, and its interaction handlers.
type Model struct {
	cfg    Config
	sink   Sink
	log    zerolog.Logger
	length LengthFunc

	rows       []DerivedRow
	geom       *Geometry
	categories []string
	colors     map[GroupRef]string
	selected   map[string]bool
}

// New validates cfg and computes its rows and geometry. Events are
// delivered to sink, which may be nil.
func New(cfg Config, sink Sink, opts ...Option) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = SinkFuncs{}
	}
	m := &Model{cfg: cfg, sink: sink, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(m)
	}

	rows, err := Derive(cfg.Data, cfg.Groups, cfg.deriveOptions())
	if err != nil {
		return nil, err
	}
	m.rows = rows
	m.categories = Categories(rows)

	m.geom, err = BuildScales(rows, cfg.Groups, *cfg.SVGMargin, cfg.DivWidth, ScaleOptions{
		LogScale:       cfg.LogScale,
		ShowPercentage: cfg.ShowPercentageValue,
		Sum:            cfg.sumConfigured(),
		Length:         m.length,
	})
	if err != nil {
		return nil, err
	}

	m.colors = cfg.groupColors()
	m.selected = make(map[string]bool, len(cfg.Selection))
	for _, c := range cfg.Selection {
		m.selected[c] = true
	}
	return m, nil
}

// Config returns the configuration m was built from.
func (m *Model) Config() Config {
	return m.cfg
}

// DerivedRows returns the rows to display, in display order.
func (m *Model) DerivedRows() []DerivedRow {
	return m.rows
}

// Scales returns the layout of the chart.
func (m *Model) Scales() *Geometry {
	return m.geom
}

// Categories returns the categories of the chart in display order.
// This is the universe of selectable categories.
func (m *Model) Categories() []string {
	return m.categories
}

// OnBarActivated handles a click on a bar or a category label. If
// the click changes the number of selected categories, it reports
// the new selection to the sink.
//
// A click that exchanges one selected category for another without
// changing the count is not reported; hosts rely on this.
func (m *Model) OnBarActivated(category string, shift bool) error {
	if !contains(m.categories, category) {
		return fmt.Errorf("%w %q", ErrUnknownCategory, category)
	}
	next := Reduce(m.cfg.Selection, category, shift, m.categories)
	if len(next) == len(m.cfg.Selection) {
		m.log.Debug().Str("category", category).Bool("shift", shift).Msg("selection unchanged")
		return nil
	}
	m.log.Debug().Str("category", category).Bool("shift", shift).Strs("selection", next).Msg("selection changed")
	m.sink.SelectionChanged(next)
	return nil
}

// OnTitleActivated handles a click on the chart title.
func (m *Model) OnTitleActivated() {
	m.log.Debug().Msg("title activated")
	m.sink.TitleActivated()
}

// Selected reports whether category is selected.
func (m *Model) Selected(category string) bool {
	return m.selected[category]
}

// GroupColor returns the color of group, regardless of selection.
func (m *Model) GroupColor(group GroupRef) string {
	return m.colors[group]
}

// BarColor returns the fill of the bar for r: its group's color if
// its category is selected and UnselectedColor otherwise.
func (m *Model) BarColor(r DerivedRow) string {
	if !m.selected[r.Category] {
		return UnselectedColor
	}
	return m.GroupColor(r.Group)
}

// LabelColor returns the color of category's axis label.
func (m *Model) LabelColor(category string) string {
	if !m.selected[category] {
		return UnselectedColor
	}
	return SelectedLabelColor
}

// CategoryTitle returns the display title of category.
func (m *Model) CategoryTitle(category string) string {
	return categoryTitle(m.cfg.CategoryTitles, category)
}

// BarTooltip returns the hover text of the bar for r: its value and,
// if computed, its percentage.
func (m *Model) BarTooltip(r DerivedRow) string {
	s := strconv.FormatFloat(r.Value, 'f', -1, 64)
	if r.HasPercentage {
		s += "\n%" + strconv.FormatFloat(r.PercentageValue, 'f', -1, 64)
	}
	return s
}
