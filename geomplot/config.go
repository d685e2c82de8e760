// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/aclements/geomplot/record"
	"github.com/aclements/geomplot/scene"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a geomplot run. It can be loaded from
// a YAML file and is then overridden by command-line flags.
type Config struct {
	Debug bool `yaml:"debug"`

	// Dimension is the expected dimension of input primitives. Zero
	// means record.DefaultDim. A negative dimension accepts records
	// of any arity.
	Dimension int `yaml:"dimension"`

	// Format is "svg" or "png".
	Format string `yaml:"format"`

	// Width and Height are the size of each view's panel. A zero
	// Width uses Height.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Views  []string `yaml:"views"`
	Title  string   `yaml:"title"`
	Strict bool     `yaml:"strict"`

	// Workers bounds how many primitives are rendered in parallel.
	Workers int `yaml:"workers"`

	// Viewer is a shell-quoted command used by -open. The output
	// path is appended to its arguments.
	Viewer string `yaml:"viewer"`
}

const (
	formatSVG = "svg"
	formatPNG = "png"
)

// Load reads and parses the config file at path and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyDefaults fills unset fields of cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Dimension == 0 {
		cfg.Dimension = record.DefaultDim
	}
	if cfg.Format == "" {
		cfg.Format = formatSVG
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Height <= 0 {
		cfg.Height = 400
	}
	if cfg.Width <= 0 {
		cfg.Width = cfg.Height
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Viewer == "" {
		cfg.Viewer = defaultViewer()
	}
}

// Validate checks cfg for settings that can't be rendered and returns
// the parsed views.
func (cfg *Config) Validate() ([]scene.View, error) {
	switch cfg.Format {
	case formatSVG, formatPNG:
	default:
		return nil, fmt.Errorf("unknown format %q (want svg or png)", cfg.Format)
	}
	views, err := scene.ParseViews(cfg.Views)
	if err != nil {
		return nil, err
	}
	return views, nil
}

// parserDim returns the dimension to pass to record.Parser.
func (cfg *Config) parserDim() int {
	switch {
	case cfg.Dimension < 0:
		return 0
	case cfg.Dimension == 0:
		return record.DefaultDim
	}
	return cfg.Dimension
}

func defaultViewer() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "cmd /c start"
	}
	return "xdg-open"
}
