// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/geomplot/record"
	"github.com/aclements/geomplot/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputKind(t *testing.T) {
	for _, test := range []struct {
		table, records bool
		format         string
		kind           outputKind
		ext            string
		binary         bool
	}{
		{false, false, formatSVG, outputPlot, "svg", false},
		{false, false, formatPNG, outputPlot, "png", true},
		{true, false, formatPNG, outputTable, "txt", false},
		{false, true, formatSVG, outputRecords, "json", false},
		{true, true, formatPNG, outputRecords, "json", false},
	} {
		k := outputKindOf(test.table, test.records)
		assert.Equal(t, test.kind, k, "table=%v records=%v", test.table, test.records)
		assert.Equal(t, test.ext, k.ext(test.format), "%v/%s", k, test.format)
		assert.Equal(t, test.binary, k.binary(test.format), "%v/%s", k, test.format)
	}
}

func TestCheckTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.png"))
	require.NoError(t, err)
	defer f.Close()

	// A regular file is never a terminal.
	assert.NoError(t, checkTerminal(f, outputPlot, formatPNG))
	assert.NoError(t, checkTerminal(f, outputTable, formatPNG))
}

func TestWriteOutput(t *testing.T) {
	s := buildScene(t)
	ps, err := readInputs([]string{writeInput(t, "in.jsonl", input)}, 3)
	require.NoError(t, err)
	cfg := &Config{}
	ApplyDefaults(cfg)
	views := []scene.View{scene.ViewXY}

	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, outputRecords, s, ps, views, cfg))
	back, err := record.Parse(&buf)
	require.NoError(t, err)
	assert.Len(t, back, len(ps))

	buf.Reset()
	require.NoError(t, writeOutput(&buf, outputTable, s, ps, views, cfg))
	for _, col := range []string{"view", "primitive", "polygon"} {
		assert.True(t, strings.Contains(buf.String(), col), "table output missing %q:\n%s", col, buf.String())
	}

	buf.Reset()
	require.NoError(t, writeOutput(&buf, outputPlot, s, ps, views, cfg))
	assert.Contains(t, buf.String(), "<svg")
}
