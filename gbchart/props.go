// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aclements/groupedbar/barchart"
	"gopkg.in/yaml.v3"
)

// loadProps reads chart props from path, or from stdin if path is
// "-". Props may be written in YAML or JSON.
func loadProps(path string) (barchart.Config, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return barchart.Config{}, err
	}
	cfg, err := parseProps(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// parseProps decodes chart props. svgMargin and all four of its sides
// are required.
func parseProps(data []byte) (barchart.Config, error) {
	var cfg barchart.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	var raw struct {
		SVGMargin map[string]interface{} `yaml:"svgMargin"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}
	if raw.SVGMargin == nil {
		return cfg, fmt.Errorf("%w: svgMargin is required", barchart.ErrInvalidConfig)
	}
	for _, side := range []string{"left", "right", "top", "bottom"} {
		if _, ok := raw.SVGMargin[side]; !ok {
			return cfg, fmt.Errorf("%w: svgMargin.%s is required", barchart.ErrInvalidConfig, side)
		}
	}
	return cfg, nil
}
