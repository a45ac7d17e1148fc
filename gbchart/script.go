// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/aclements/groupedbar/barchart"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
)

type actionKind int

const (
	actClick actionKind = iota
	actShiftClick
	actTitle
)

// An action is one simulated user interaction.
type action struct {
	kind     actionKind
	category string
}

func (a action) String() string {
	switch a.kind {
	case actShiftClick:
		return "shift-click " + a.category
	case actTitle:
		return "title"
	}
	return "click " + a.category
}

// parseScript parses a list of interactions. Words are split as by
// the shell, so categories containing spaces may be quoted. Each
// word is one of:
//
//	title     click the chart title
//	+name     shift-click category name
//	=name     click category name, even if it is "title" or starts with "+"
//	name      click category name
func parseScript(script string) ([]action, error) {
	words, err := shellquote.Split(script)
	if err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	var actions []action
	for _, w := range words {
		switch {
		case w == "title":
			actions = append(actions, action{kind: actTitle})
		case strings.HasPrefix(w, "="):
			actions = append(actions, action{actClick, w[1:]})
		case strings.HasPrefix(w, "+") && len(w) > 1:
			actions = append(actions, action{actShiftClick, w[1:]})
		default:
			actions = append(actions, action{actClick, w})
		}
	}
	return actions, nil
}

// host plays the part of the application embedding a chart: it owns
// the configuration and applies the chart's events to it.
type host struct {
	cfg barchart.Config
	log zerolog.Logger
}

func (h *host) SelectionChanged(newSelection []string) {
	h.log.Info().Strs("selection", newSelection).Msg("selection changed")
	h.cfg.Selection = newSelection
}

func (h *host) TitleActivated() {
	h.cfg.AlphaOrder = !h.cfg.AlphaOrder
	h.log.Info().Bool("alphaOrder", h.cfg.AlphaOrder).Msg("title clicked")
}

// replay applies actions to cfg in order, rebuilding the chart after
// each one as a host would on every render, and returns the final
// configuration.
func replay(cfg barchart.Config, actions []action, log zerolog.Logger) (barchart.Config, error) {
	h := &host{cfg: cfg, log: log}
	for _, a := range actions {
		m, err := barchart.New(h.cfg, h, barchart.WithLogger(log))
		if err != nil {
			return h.cfg, err
		}
		switch a.kind {
		case actTitle:
			m.OnTitleActivated()
		default:
			if err := m.OnBarActivated(a.category, a.kind == actShiftClick); err != nil {
				return h.cfg, fmt.Errorf("%s: %w", a, err)
			}
		}
	}
	return h.cfg, nil
}
