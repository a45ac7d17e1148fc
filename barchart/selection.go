// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

// Reduce returns the selection that results from clicking category,
// with or without shift held, given the current selection and the
// set of all selectable categories.
//
// A plain click adds an unselected category. A plain click on a
// selected category narrows the selection to just that category if
// every category was selected, and otherwise does nothing. A shift
// click removes a selected category, except that removing the last
// selected category selects all categories instead. A shift click on
// an unselected category does nothing.
//
// Reduce never returns an empty selection for a non-empty input
// selection and never modifies its arguments.
func Reduce(selection []string, category string, shift bool, all []string) []string {
	selected := contains(selection, category)
	switch {
	case !shift && !selected:
		return append(clone(selection), category)

	case !shift && selected:
		if len(selection) == len(all) {
			return []string{category}
		}
		return clone(selection)

	case shift && selected:
		if len(selection) == 1 {
			return clone(all)
		}
		return without(selection, category)

	default:
		return clone(selection)
	}
}

func contains(xs []string, x string) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}

func clone(xs []string) []string {
	return append(make([]string, 0, len(xs)+1), xs...)
}

func without(xs []string, x string) []string {
	out := make([]string, 0, len(xs))
	for _, y := range xs {
		if y != x {
			out = append(out, y)
		}
	}
	return out
}
