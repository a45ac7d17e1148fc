// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cssunit converts CSS length expressions to pixels.
//
// Absolute units use the CSS reference pixel of 1/96 inch. Font
// relative units (ch, em, ex, rem) are measured from a font face.
package cssunit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	ErrSyntax = errors.New("malformed length")
	ErrUnit   = errors.New("unsupported length unit")
)

// A Converter converts lengths using the metrics of Face.
type Converter struct {
	Face font.Face
}

// Default measures font relative units in the 7x13 fixed font.
var Default = Converter{Face: basicfont.Face7x13}

// ToPx converts length to pixels using Default.
func ToPx(length string) (float64, error) {
	return Default.ToPx(length)
}

var absolute = map[string]float64{
	"px": 1,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"q":  96 / 25.4 / 4,
	"pt": 96.0 / 72,
	"pc": 16,
}

// ToPx converts a length such as "2.5ch", "12px", or "1in" to
// pixels. A bare number is in pixels.
func (c Converter) ToPx(length string) (float64, error) {
	s := strings.TrimSpace(length)
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E'
	})
	// "1em" and "2ex" would otherwise be read as exponents.
	if j := strings.IndexAny(s, "eE"); j >= 0 && (i < 0 || j < i) && isUnitAt(s, j) {
		i = j
	}
	num, unit := s, ""
	if i >= 0 {
		num, unit = s[:i], strings.ToLower(s[i:])
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrSyntax, length)
	}

	if unit == "" {
		return v, nil
	}
	if f, ok := absolute[unit]; ok {
		return v * f, nil
	}
	switch unit {
	case "ch":
		return v * c.ch(), nil
	case "em", "rem":
		return v * c.em(), nil
	case "ex":
		return v * c.ex(), nil
	}
	return 0, fmt.Errorf("%w %q in %q", ErrUnit, unit, length)
}

func isUnitAt(s string, j int) bool {
	rest := strings.ToLower(s[j:])
	return rest == "em" || rest == "ex"
}

// ch is the advance of the "0" glyph.
func (c Converter) ch() float64 {
	return toFloat(font.MeasureString(c.Face, "0"))
}

// em is the line height of the face.
func (c Converter) em() float64 {
	return toFloat(c.Face.Metrics().Height)
}

// ex approximates the x-height as half an em.
func (c Converter) ex() float64 {
	return c.em() / 2
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
