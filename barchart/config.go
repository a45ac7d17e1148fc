// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette/brewer"
)

// Config is the complete description of one chart render. Its field
// names follow the props of the widget it describes, so a props file
// can be decoded directly into it.
type Config struct {
	Title     string  `json:"title" yaml:"title"`
	DivWidth  float64 `json:"divWidth" yaml:"divWidth"`
	SVGMargin *Margin `json:"svgMargin" yaml:"svgMargin"`

	Data   []Row   `json:"data" yaml:"data"`
	Groups []Group `json:"groups" yaml:"groups"`

	// CategoryTitles maps a category to its display title.
	// Categories without an entry are displayed as is.
	CategoryTitles map[string]string `json:"categoryTitles,omitempty" yaml:"categoryTitles,omitempty"`

	// GroupIDsToSum, if non-empty, adds one SumGroup bar per
	// category whose value is the sum of these groups' values.
	// GroupSumColor is the color of those bars and is required
	// when GroupIDsToSum is set.
	GroupIDsToSum []string `json:"groupIdsToSum,omitempty" yaml:"groupIdsToSum,omitempty"`
	GroupSumColor string   `json:"groupSumColor,omitempty" yaml:"groupSumColor,omitempty"`

	ShowPercentageValue bool `json:"showPercentageValue" yaml:"showPercentageValue"`
	LogScale            bool `json:"logScale" yaml:"logScale"`
	AlphaOrder          bool `json:"alphaOrder" yaml:"alphaOrder"`

	// Selection is the set of selected categories. It is owned by
	// the host; Model only proposes changes to it.
	Selection []string `json:"selection" yaml:"selection"`
}

// Validate reports the first configuration error in c, or nil. All
// errors wrap ErrInvalidConfig or ErrUnknownGroup.
func (c *Config) Validate() error {
	if c.SVGMargin == nil {
		return fmt.Errorf("%w: svgMargin is required", ErrInvalidConfig)
	}
	m := c.SVGMargin
	if m.Left < 0 || m.Right < 0 || m.Top < 0 || m.Bottom < 0 {
		return fmt.Errorf("%w: negative svgMargin %+v", ErrInvalidConfig, *m)
	}
	if c.DivWidth < m.Left+m.Right {
		return fmt.Errorf("%w: divWidth %g is narrower than the left and right margins", ErrInvalidConfig, c.DivWidth)
	}

	seen := make(map[string]bool, len(c.Groups))
	for _, g := range c.Groups {
		if seen[g.ID] {
			return fmt.Errorf("%w: duplicate group %q", ErrInvalidConfig, g.ID)
		}
		seen[g.ID] = true
	}

	if len(c.GroupIDsToSum) > 0 {
		if len(c.Groups) == 0 {
			return fmt.Errorf("%w: groupIdsToSum set with no groups", ErrInvalidConfig)
		}
		if c.GroupSumColor == "" {
			return fmt.Errorf("%w: groupIdsToSum set without groupSumColor", ErrInvalidConfig)
		}
		for _, id := range c.GroupIDsToSum {
			if !seen[id] {
				return fmt.Errorf("%w %q in groupIdsToSum", ErrUnknownGroup, id)
			}
		}
	}

	return checkRowGroups(c.Data, c.Groups)
}

// checkRowGroups returns an ErrUnknownGroup error for the first row
// whose group is not in groups.
func checkRowGroups(rows []Row, groups []Group) error {
	known := make(map[string]bool, len(groups))
	for _, g := range groups {
		known[g.ID] = true
	}
	for i, r := range rows {
		if !known[r.GroupID] {
			return fmt.Errorf("%w %q in row %d (category %q)", ErrUnknownGroup, r.GroupID, i, r.Category)
		}
	}
	return nil
}

// sumConfigured reports whether c displays sum bars.
func (c *Config) sumConfigured() bool {
	return len(c.GroupIDsToSum) > 0
}

// deriveOptions extracts the options for Derive from c.
func (c *Config) deriveOptions() DeriveOptions {
	return DeriveOptions{
		SumGroupIDs:    c.GroupIDsToSum,
		ShowPercentage: c.ShowPercentageValue,
		AlphaOrder:     c.AlphaOrder,
		CategoryTitles: c.CategoryTitles,
	}
}

// groupColors returns the color of every group that can appear in
// the chart. Groups with no color get one from the Set1 qualitative
// palette, chosen by the group's position.
func (c *Config) groupColors() map[GroupRef]string {
	colors := make(map[GroupRef]string, len(c.Groups)+1)
	for i, g := range c.Groups {
		col := g.Color
		if col == "" {
			col = defaultColor(i)
		}
		colors[GroupID(g.ID)] = col
	}
	if c.sumConfigured() {
		colors[SumGroup] = c.GroupSumColor
	}
	return colors
}

// defaultColor returns the i'th color of the Set1 palette, cycling
// if there are more groups than colors.
func defaultColor(i int) string {
	pal := brewer.Set1_9
	return hexColor(pal[i%len(pal)])
}

// hexColor formats c as a "#rrggbb" string.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}
