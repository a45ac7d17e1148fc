// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/scale"
)

// maxTicks is the maximum number of major ticks on the value axis.
const maxTicks = 3

// A ValueScale maps bar measures to bar lengths in pixels.
type ValueScale struct {
	isLog    bool
	lin      scale.Linear
	log      scale.Log
	min, max float64
	width    float64
	percent  bool
}

// newValueScale returns a scale mapping [floor, hi] to [0, width],
// where floor is 0 for a linear scale and 1 for a log scale. If hi
// does not exceed floor, the domain is widened so that the scale is
// still well defined.
func newValueScale(hi, width float64, logScale, percent bool) (*ValueScale, error) {
	s := &ValueScale{isLog: logScale, width: width, percent: percent}
	if !logScale {
		if !(hi > 0) {
			hi = 1
		}
		s.lin = scale.Linear{Min: 0, Max: hi}
		s.min, s.max = 0, hi
		return s, nil
	}

	if !(hi > 1) {
		hi = 10
	}
	l, err := scale.NewLog(1, hi, 10)
	if err != nil {
		return nil, err
	}
	s.log = l
	s.min, s.max = 1, hi
	return s, nil
}

// Domain returns the input interval of s.
func (s *ValueScale) Domain() (min, max float64) {
	return s.min, s.max
}

// IsLog reports whether s is logarithmic.
func (s *ValueScale) IsLog() bool {
	return s.isLog
}

// Map returns the pixel length of a bar of measure v. On a log scale,
// non-positive measures have no position and map to 0.
func (s *ValueScale) Map(v float64) float64 {
	if s.isLog {
		if v <= 0 {
			return 0
		}
		return s.log.Map(v) * s.width
	}
	return s.lin.Map(v) * s.width
}

// A Tick is a labeled mark on the value axis.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Ticks returns at most three major ticks for the value axis. Labels
// are percentages if the scale measures percentages and
// SI-abbreviated numbers otherwise.
func (s *ValueScale) Ticks() []Tick {
	o := scale.TickOptions{Max: maxTicks}
	var major []float64
	if s.isLog {
		major, _ = s.log.Ticks(o)
	} else {
		major, _ = s.lin.Ticks(o)
	}

	ticks := make([]Tick, len(major))
	for i, v := range major {
		ticks[i] = Tick{Value: v, Pos: s.Map(v), Label: s.label(v)}
	}
	return ticks
}

func (s *ValueScale) label(v float64) string {
	if s.percent {
		return strconv.FormatFloat(v, 'f', -1, 64) + "%"
	}
	return formatSI(v)
}

var siPrefixes = []string{"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// formatSI formats x with one significant digit and an SI prefix,
// such as "2k" for 2000 or "500m" for 0.5.
func formatSI(x float64) string {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	// Round first, since rounding can carry into the next power of
	// ten (9500 is "10k", not "9k").
	e := strconv.FormatFloat(x, 'e', 0, 64)
	mant, exp, _ := strings.Cut(e, "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return e
	}

	group := int(math.Floor(float64(n) / 3))
	if group < -8 {
		group = -8
	} else if group > 8 {
		group = 8
	}
	shift := n - 3*group

	switch {
	case shift > 0:
		mant += strings.Repeat("0", shift)
	case shift < 0:
		// Only reachable beyond the smallest prefix.
		v, _ := strconv.ParseFloat(mant, 64)
		mant = strconv.FormatFloat(v*math.Pow10(shift), 'g', -1, 64)
	}
	return mant + siPrefixes[group+8]
}
