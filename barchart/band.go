// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import "math"

// A BandScale maps each key of a discrete domain to one of a
// sequence of equal, contiguous bands of a pixel range. Positions and
// widths are rounded to whole pixels.
type BandScale struct {
	index     map[string]int
	domain    []string
	start     float64
	step      float64
	bandwidth float64
}

// NewBandScale returns a band scale over domain spanning [0, extent].
//
// Duplicate keys in domain are ignored after their first occurrence.
// padding is the fraction of each step left empty, both between
// bands and, as a half step, at either end. The bands are centered
// in the range if rounding leaves any space.
func NewBandScale(domain []string, extent, padding float64) *BandScale {
	s := &BandScale{index: make(map[string]int)}
	for _, k := range domain {
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = len(s.domain)
		s.domain = append(s.domain, k)
	}

	n := float64(len(s.domain))
	s.step = math.Floor(extent / math.Max(1, n-padding+2*padding))
	s.start = math.Round((extent - s.step*(n-padding)) / 2)
	s.bandwidth = math.Round(s.step * (1 - padding))
	return s
}

// Domain returns the keys of s in band order.
func (s *BandScale) Domain() []string {
	return append([]string(nil), s.domain...)
}

// Map returns the start of the band for key. ok is false if key is
// not in the domain.
func (s *BandScale) Map(key string) (pos float64, ok bool) {
	i, ok := s.index[key]
	if !ok {
		return 0, false
	}
	return s.start + s.step*float64(i), true
}

// Bandwidth returns the width of each band.
func (s *BandScale) Bandwidth() float64 {
	return s.bandwidth
}

// Step returns the distance between the starts of adjacent bands.
func (s *BandScale) Step() float64 {
	return s.step
}
