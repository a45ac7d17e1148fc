// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gbchart renders a horizontal grouped bar chart.
//
// gbchart reads chart props, in YAML or JSON, from the named file or
// from stdin and writes the chart as SVG. The props are those of the
// barchart.Config type, for example:
//
//	title: kilo
//	divWidth: 360
//	svgMargin: {left: 110, right: 50, top: 20, bottom: 30}
//	data:
//	  - {category: bulgur, value: 3500, groupId: "62"}
//	  - {category: pirinç, value: 6500, groupId: "62"}
//	groups:
//	  - {id: "62", color: "#E41A1C"}
//	selection: [bulgur, pirinç]
//
// With -script, gbchart first replays a sequence of clicks on the
// chart, applying each resulting event to the props the way an
// embedding application would. Words of the script are "name" to
// click a category, "+name" to shift-click it, and "title" to click
// the title, which toggles alphabetical ordering. Words are quoted as
// in the shell.
//
// With -table, gbchart prints the derived rows of the chart instead
// of drawing it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/groupedbar/barchart"
	"github.com/rs/zerolog"
)

func main() {
	var (
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable   = flag.Bool("table", false, "output a table of derived rows instead of a chart")
		flagScript  = flag.String("script", "", "replay the clicks in `script` before rendering")
		flagAlpha   = flag.Bool("alpha", false, "order categories alphabetically")
		flagLog     = flag.Bool("log", false, "use a logarithmic value scale")
		flagPercent = flag.Bool("percent", false, "show values as percentages of their group")
		flagWidth   = flag.Float64("width", 0, "override the chart width in `pixels`")
		flagVerbose = flag.Bool("v", false, "log chart events in detail")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [props]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := zerolog.InfoLevel
	if *flagVerbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level).With().Str("cmd", "gbchart").Logger()

	path := "-"
	switch flag.NArg() {
	case 0:
	case 1:
		path = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadProps(path)
	if err != nil {
		log.Fatal().Err(err).Msg("loading props")
	}

	// Flags given explicitly override the props.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "alpha":
			cfg.AlphaOrder = *flagAlpha
		case "log":
			cfg.LogScale = *flagLog
		case "percent":
			cfg.ShowPercentageValue = *flagPercent
		case "width":
			cfg.DivWidth = *flagWidth
		}
	})

	if *flagScript != "" {
		actions, err := parseScript(*flagScript)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		if cfg, err = replay(cfg, actions, log); err != nil {
			log.Fatal().Err(err).Msg("replaying script")
		}
	}

	m, err := barchart.New(cfg, nil, barchart.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("building chart")
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		defer f.Close()
	}

	if *flagTable {
		table.Fprint(f, rowsToTable(m))
		return
	}
	renderSVG(f, m)
}
