// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/groupedbar/barchart"
)

// rowsToTable returns the derived rows of m, in display order, with
// their resolved titles and colors.
func rowsToTable(m *barchart.Model) *table.Table {
	rows := m.DerivedRows()
	n := len(rows)
	categories, titles := make([]string, n), make([]string, n)
	groups, colors := make([]string, n), make([]string, n)
	values, percentages := make([]float64, n), make([]float64, n)
	for i, r := range rows {
		categories[i] = r.Category
		titles[i] = m.CategoryTitle(r.Category)
		groups[i] = r.Group.String()
		colors[i] = m.BarColor(r)
		values[i] = r.Value
		percentages[i] = r.PercentageValue
	}

	tab := new(table.Builder).
		Add("category", categories).
		Add("title", titles).
		Add("group", groups).
		Add("value", values)
	if m.Config().ShowPercentageValue {
		tab.Add("percentage", percentages)
	}
	return tab.Add("color", colors).Done()
}
