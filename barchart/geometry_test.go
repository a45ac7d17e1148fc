// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

var demoMargin = Margin{Left: 110, Right: 50, Top: 20, Bottom: 30}

func TestBarHeight(t *testing.T) {
	for _, test := range []struct {
		n    int
		want string
	}{
		{0, "2.5ch"},
		{1, "2.5ch"},
		{2, "2.3ch"},
		{6, "1.5ch"},
		{10, "0.7ch"},
		{11, "0.5ch"},
		{40, "0.5ch"},
	} {
		if got := BarHeight(test.n); got != test.want {
			t.Errorf("BarHeight(%d) = %q, want %q", test.n, got, test.want)
		}
	}
}

func TestBandScale(t *testing.T) {
	s := NewBandScale([]string{"b", "a", "b"}, 35, 0.05)
	if got, want := s.Domain(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Domain() = %v, want %v", got, want)
	}
	if s.Step() != 17 || s.Bandwidth() != 16 {
		t.Errorf("step, bandwidth = %v, %v; want 17, 16", s.Step(), s.Bandwidth())
	}
	for key, want := range map[string]float64{"b": 1, "a": 18} {
		if got, ok := s.Map(key); !ok || got != want {
			t.Errorf("Map(%q) = %v, %v; want %v, true", key, got, ok, want)
		}
	}
	if _, ok := s.Map("c"); ok {
		t.Errorf("Map of unknown key succeeded")
	}

	// Without padding, bands tile the range exactly.
	s = NewBandScale([]string{"x", "y", "z", "w"}, 40, 0)
	for i, key := range s.Domain() {
		if got, _ := s.Map(key); got != float64(10*i) {
			t.Errorf("Map(%q) = %v, want %v", key, got, 10*i)
		}
	}
}

func TestBuildScales(t *testing.T) {
	rows, err := Derive(kiloRows, kiloGroups, DeriveOptions{})
	if err != nil {
		t.Fatal(err)
	}
	g, err := BuildScales(rows, kiloGroups, demoMargin, 360, ScaleOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if min, max := g.Value.Domain(); min != 0 || max != 6500 {
		t.Errorf("value domain = [%v, %v], want [0, 6500]", min, max)
	}
	if g.SVGWidth != 200 {
		t.Errorf("SVGWidth = %v, want 200", g.SVGWidth)
	}
	// One group: 2.5ch = 17.5px per bar, two categories.
	if g.BarHeight != 17.5 || g.SVGHeight != 35 || g.TotalHeight != 85 {
		t.Errorf("bar, svg, total height = %v, %v, %v; want 17.5, 35, 85", g.BarHeight, g.SVGHeight, g.TotalHeight)
	}
	if got, want := g.Groups(), []GroupRef{GroupID("g1")}; !reflect.DeepEqual(got, want) {
		t.Errorf("Groups() = %v, want %v", got, want)
	}

	bars := g.Bars()
	if len(bars) != 2 {
		t.Fatalf("got %d bars, want 2", len(bars))
	}
	if b := bars[0]; b.Row.Category != "b" || b.Y != 1 || b.Height != 16 || b.Width != 200 {
		t.Errorf("bar b = %+v", b)
	}
	if b := bars[1]; b.Row.Category != "a" || b.Y != 18 || math.Abs(b.Width-200*3500.0/6500) > 1e-9 {
		t.Errorf("bar a = %+v", b)
	}
}

func TestBuildScalesGroups(t *testing.T) {
	rows := []Row{
		{Category: "x", Value: 10, GroupID: "g1"},
		{Category: "x", Value: 20, GroupID: "g2"},
		{Category: "y", Value: 30, GroupID: "g2"},
	}
	groups := []Group{{ID: "g1"}, {ID: "g2"}, {ID: "unused"}}
	derived, err := Derive(rows, groups, DeriveOptions{SumGroupIDs: []string{"g1", "g2"}})
	if err != nil {
		t.Fatal(err)
	}
	length := func(s string) (float64, error) {
		if s != BarHeight(4) {
			t.Errorf("bar height %q, want %q", s, BarHeight(4))
		}
		return 10, nil
	}
	g, err := BuildScales(derived, groups, Margin{}, 100, ScaleOptions{Sum: true, Length: length})
	if err != nil {
		t.Fatal(err)
	}

	// Three configured groups plus the sum group size the bars,
	// but only groups with rows get a sub-band.
	if g.SVGHeight != 2*4*10 {
		t.Errorf("SVGHeight = %v, want 80", g.SVGHeight)
	}
	if got, want := g.Groups(), []GroupRef{GroupID("g2"), GroupID("g1"), SumGroup}; !reflect.DeepEqual(got, want) {
		t.Errorf("Groups() = %v, want %v", got, want)
	}
	if _, ok := g.GroupOffset(GroupID("unused")); ok {
		t.Errorf("unused group has a sub-band")
	}
	if min, max := g.Value.Domain(); min != 0 || max != 30 {
		t.Errorf("value domain = [%v, %v], want [0, 30]", min, max)
	}

	// Sub-bands within a category do not overlap.
	for _, b := range g.Bars() {
		for _, o := range g.Bars() {
			if b.Key == o.Key || b.Row.Category != o.Row.Category {
				continue
			}
			if b.Y < o.Y+o.Height && o.Y < b.Y+b.Height {
				t.Errorf("bars %s and %s overlap", b.Key, o.Key)
			}
		}
	}
}

func TestBuildScalesPercentage(t *testing.T) {
	rows, err := Derive(kiloRows, kiloGroups, DeriveOptions{ShowPercentage: true})
	if err != nil {
		t.Fatal(err)
	}
	g, err := BuildScales(rows, kiloGroups, demoMargin, 360, ScaleOptions{ShowPercentage: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, max := g.Value.Domain(); max != 65 {
		t.Errorf("value domain max = %v, want 65", max)
	}
	for _, tick := range g.Value.Ticks() {
		if !strings.HasSuffix(tick.Label, "%") {
			t.Errorf("tick label %q is not a percentage", tick.Label)
		}
	}
}

func TestBuildScalesDegenerate(t *testing.T) {
	g, err := BuildScales(nil, kiloGroups, demoMargin, 360, ScaleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if g.SVGHeight != 0 || g.TotalHeight != 50 || len(g.Bars()) != 0 {
		t.Errorf("empty chart: svg height %v, total height %v, %d bars", g.SVGHeight, g.TotalHeight, len(g.Bars()))
	}

	zero := []DerivedRow{{Category: "a", Group: GroupID("g1")}}
	for _, log := range []bool{false, true} {
		g, err := BuildScales(zero, kiloGroups, demoMargin, 360, ScaleOptions{LogScale: log})
		if err != nil {
			t.Fatalf("log=%v: %v", log, err)
		}
		min, max := g.Value.Domain()
		if !(max > min) {
			t.Errorf("log=%v: degenerate domain [%v, %v]", log, min, max)
		}
		if w := g.Bars()[0].Width; w != 0 {
			t.Errorf("log=%v: zero bar has width %v", log, w)
		}
	}

	if _, err := BuildScales(nil, kiloGroups, demoMargin, 100, ScaleOptions{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative plot width: error = %v, want %v", err, ErrInvalidConfig)
	}
}

func TestValueScaleLog(t *testing.T) {
	s, err := newValueScale(100, 200, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if min, max := s.Domain(); min != 1 || max != 100 {
		t.Errorf("log domain = [%v, %v], want [1, 100]", min, max)
	}
	for v, want := range map[float64]float64{1: 0, 10: 100, 100: 200, 0: 0, -5: 0} {
		if got := s.Map(v); math.Abs(got-want) > 1e-9 {
			t.Errorf("Map(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestValueScaleTicks(t *testing.T) {
	s, err := newValueScale(6500, 200, false, false)
	if err != nil {
		t.Fatal(err)
	}
	ticks := s.Ticks()
	if len(ticks) == 0 || len(ticks) > maxTicks {
		t.Fatalf("got %d ticks, want 1 to %d", len(ticks), maxTicks)
	}
	for _, tick := range ticks {
		if tick.Value < 0 || tick.Value > 6500 {
			t.Errorf("tick %v outside of domain", tick.Value)
		}
		if tick.Pos != s.Map(tick.Value) || tick.Label != formatSI(tick.Value) {
			t.Errorf("tick %+v inconsistent with scale", tick)
		}
	}
}

func TestFormatSI(t *testing.T) {
	for _, test := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{300, "300"},
		{2000, "2k"},
		{-2000, "-2k"},
		{9600, "10k"},
		{40000, "40k"},
		{1.2e6, "1M"},
		{0.5, "500m"},
		{0.002, "2m"},
	} {
		if got := formatSI(test.in); got != test.want {
			t.Errorf("formatSI(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}
