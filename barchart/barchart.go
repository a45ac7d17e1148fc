// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package barchart computes the data and geometry of a horizontal
// grouped bar chart and the selection changes produced by clicking
// on it.
//
// A chart is described by a Config: a set of Rows, each of which
// gives a value for a (category, group) pair, and a set of Groups
// that give each group its color. Derive turns the rows into the
// final, ordered set of bars (optionally adding a per-category sum
// bar and percentage values), BuildScales lays those bars out in
// pixel space, and Reduce computes how a click changes the selected
// categories. Model ties these together for a single render and
// reports interactions to a Sink.
//
// Drawing is left to the caller. Everything in this package is a pure
// function of its inputs; a host should build a new Model each time
// its configuration changes.
package barchart

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidConfig is returned for malformed chart
	// configuration, such as margins that do not fit in the chart
	// width.
	ErrInvalidConfig = errors.New("invalid chart configuration")

	// ErrUnknownGroup is returned when a row or a sum group ID
	// names a group that is not configured.
	ErrUnknownGroup = errors.New("unknown group")

	// ErrUnknownCategory is returned when an interaction names a
	// category that is not in the chart.
	ErrUnknownCategory = errors.New("unknown category")
)

// Row is one input bar: the value of group GroupID in Category.
type Row struct {
	Category string  `json:"category" yaml:"category"`
	GroupID  string  `json:"groupId" yaml:"groupId"`
	Value    float64 `json:"value" yaml:"value"`

	// PercentageValue and Count are carried through from the host
	// but ignored. Percentages are always recomputed by Derive.
	PercentageValue *float64 `json:"percentageValue,omitempty" yaml:"percentageValue,omitempty"`
	Count           *int     `json:"count,omitempty" yaml:"count,omitempty"`
}

// Group is a series of bars sharing a color.
type Group struct {
	ID    string `json:"id" yaml:"id"`
	Color string `json:"color" yaml:"color"`
}

// GroupRef identifies the group a derived row belongs to. It is
// either a host group, named by ID, or the synthetic SumGroup. The
// two can never collide, even if the host uses the ID "group-sum".
type GroupRef struct {
	id  string
	sum bool
}

// SumGroup is the synthetic group of per-category sum rows.
var SumGroup = GroupRef{sum: true}

// sumGroupName is how SumGroup is rendered for display and keys.
const sumGroupName = "group-sum"

// GroupID returns a reference to the host group with the given ID.
func GroupID(id string) GroupRef {
	return GroupRef{id: id}
}

// IsSum reports whether g is SumGroup.
func (g GroupRef) IsSum() bool {
	return g.sum
}

// ID returns the host group ID of g, or "" for SumGroup.
func (g GroupRef) ID() string {
	return g.id
}

func (g GroupRef) String() string {
	if g.sum {
		return sumGroupName
	}
	return g.id
}

// key returns a string that distinguishes every GroupRef, including
// a host group that happens to be called "group-sum".
func (g GroupRef) key() string {
	if g.sum {
		return "\x00" + sumGroupName
	}
	return g.id
}

// DerivedRow is a row ready for display.
type DerivedRow struct {
	Category string
	Group    GroupRef
	Value    float64

	// PercentageValue is the row's share of its group total, in
	// percent, rounded to two decimal places. It is only set if
	// HasPercentage is true.
	PercentageValue float64
	HasPercentage   bool
}

// Key returns a stable identity for the bar drawn for r. It is
// unique among the rows returned by a single call to Derive as long
// as the input has at most one value per (category, group).
func (r DerivedRow) Key() string {
	return strconv.Quote(r.Category) + "/" + strconv.Quote(r.Group.key())
}

// Measure returns the quantity the bar for r represents: its
// percentage if percent is set and its raw value otherwise.
func (r DerivedRow) Measure(percent bool) float64 {
	if percent {
		return r.PercentageValue
	}
	return r.Value
}

// Margin is the space in pixels around the plot area.
type Margin struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}
