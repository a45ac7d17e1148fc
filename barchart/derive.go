// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"math"
	"sort"
)

// DeriveOptions controls how Derive transforms input rows.
type DeriveOptions struct {
	// SumGroupIDs, if non-empty, adds a SumGroup row for every
	// category, summing the values of these groups.
	SumGroupIDs []string

	// ShowPercentage computes PercentageValue for every row.
	ShowPercentage bool

	// AlphaOrder sorts rows by category title instead of by
	// descending value.
	AlphaOrder bool

	// CategoryTitles maps categories to display titles for
	// AlphaOrder.
	CategoryTitles map[string]string
}

// Derive returns the rows to display for the input rows and groups.
//
// Every row must belong to one of groups; otherwise Derive returns an
// error wrapping ErrUnknownGroup. The result is sorted by category
// title if opts.AlphaOrder is set. Otherwise it is sorted by descending
// value, with all SumGroup rows after all other rows. Ties keep their
// input order, and sum rows follow the first appearance of their
// category in rows.
func Derive(rows []Row, groups []Group, opts DeriveOptions) ([]DerivedRow, error) {
	if err := checkRowGroups(rows, groups); err != nil {
		return nil, err
	}

	out := make([]DerivedRow, 0, len(rows)+len(rows)/2)
	for _, r := range rows {
		out = append(out, DerivedRow{Category: r.Category, Group: GroupID(r.GroupID), Value: r.Value})
	}
	out = append(out, sumRows(rows, opts.SumGroupIDs)...)

	if opts.ShowPercentage {
		totals := groupTotals(rows)
		for i := range out {
			d := &out[i]
			d.HasPercentage = true
			if d.Group.IsSum() {
				d.PercentageValue = 100
				continue
			}
			d.PercentageValue = percentage(d.Value, totals[d.Group.ID()])
		}
	}

	sortRows(out, opts.AlphaOrder, opts.CategoryTitles)
	return out, nil
}

// sumRows returns one SumGroup row per distinct category of rows, in
// order of first appearance, or nil if ids is empty.
func sumRows(rows []Row, ids []string) []DerivedRow {
	if len(ids) == 0 {
		return nil
	}
	summed := make(map[string]bool, len(ids))
	for _, id := range ids {
		summed[id] = true
	}

	var out []DerivedRow
	index := make(map[string]int)
	for _, r := range rows {
		i, ok := index[r.Category]
		if !ok {
			i = len(out)
			index[r.Category] = i
			out = append(out, DerivedRow{Category: r.Category, Group: SumGroup})
		}
		if summed[r.GroupID] {
			out[i].Value += r.Value
		}
	}
	return out
}

// groupTotals returns the sum of the values of each group in rows.
func groupTotals(rows []Row) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range rows {
		totals[r.GroupID] += r.Value
	}
	return totals
}

// percentage returns 100*value/total rounded to two decimal places.
// An empty group has no meaningful share, so a zero total gives 0.
func percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(100*value/total*100) / 100
}

func sortRows(rows []DerivedRow, alpha bool, titles map[string]string) {
	if alpha {
		sort.SliceStable(rows, func(i, j int) bool {
			return categoryTitle(titles, rows[i].Category) < categoryTitle(titles, rows[j].Category)
		})
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return valueKey(rows[i]) > valueKey(rows[j])
	})
}

// valueKey is the descending sort key of r. Sum rows sort below every
// finite value.
func valueKey(r DerivedRow) float64 {
	if r.Group.IsSum() {
		return math.Inf(-1)
	}
	return r.Value
}

func categoryTitle(titles map[string]string, category string) string {
	if t, ok := titles[category]; ok && t != "" {
		return t
	}
	return category
}

// Categories returns the distinct categories of rows in order of
// first appearance. For rows returned by Derive, this is the display
// order of the categories and the universe of selectable categories.
func Categories(rows []DerivedRow) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, r := range rows {
		if !seen[r.Category] {
			seen[r.Category] = true
			cats = append(cats, r.Category)
		}
	}
	return cats
}
