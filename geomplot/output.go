// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aclements/geomplot/geom"
	"github.com/aclements/geomplot/record"
	"github.com/aclements/geomplot/scene"
	"github.com/aclements/go-gg/table"
	"golang.org/x/crypto/ssh/terminal"
)

// outputKind is what geomplot writes.
type outputKind int

const (
	outputPlot outputKind = iota
	outputTable
	outputRecords
)

func outputKindOf(tableFlag, recordsFlag bool) outputKind {
	switch {
	case recordsFlag:
		return outputRecords
	case tableFlag:
		return outputTable
	}
	return outputPlot
}

// ext returns the file extension for output of kind k. Plots use the
// configured format.
func (k outputKind) ext(format string) string {
	switch k {
	case outputTable:
		return "txt"
	case outputRecords:
		return "json"
	}
	return format
}

func (k outputKind) binary(format string) bool {
	return k == outputPlot && format == formatPNG
}

// checkTerminal refuses to write binary output to a terminal.
func checkTerminal(f *os.File, k outputKind, format string) error {
	if k.binary(format) && terminal.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("refusing to write %s to a terminal; use -o", format)
	}
	return nil
}

func writeOutput(w io.Writer, k outputKind, s *scene.Scene, ps []geom.Primitive, views []scene.View, cfg *Config) error {
	switch k {
	case outputRecords:
		return record.Fprint(w, ps)
	case outputTable:
		table.Fprint(w, s.Table(views))
		return nil
	}
	return writeScene(w, s, views, cfg)
}

func writeScene(w io.Writer, s *scene.Scene, views []scene.View, cfg *Config) error {
	switch cfg.Format {
	case formatPNG:
		return s.WritePNG(w, views, cfg.Width, cfg.Height)
	default:
		return s.WriteSVG(w, views, cfg.Title, cfg.Width, cfg.Height)
	}
}
