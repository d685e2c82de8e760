// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aclements/geomplot/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []*Record
	}{
		// Single record.
		{`{"point":[1,2,3]}`,
			[]*Record{{geom.KindPoint, []float64{1, 2, 3}, 1}},
		},

		// Array of records.
		{`[{"point":[1,2,3]},{"line":[0,1,0,0,0,1]},{"plane":[1,1,1,-1]}]`,
			[]*Record{
				{geom.KindPoint, []float64{1, 2, 3}, 1},
				{geom.KindLine, []float64{0, 1, 0, 0, 0, 1}, 1},
				{geom.KindPlane, []float64{1, 1, 1, -1}, 1},
			},
		},

		// Blank lines, comments, and multiple lines.
		{`
# axes
  {"point":[0,0,0]}

[{"point":[1,0,0]}, {"point":[0,1,0]}]
`,
			[]*Record{
				{geom.KindPoint, []float64{0, 0, 0}, 3},
				{geom.KindPoint, []float64{1, 0, 0}, 5},
				{geom.KindPoint, []float64{0, 1, 0}, 5},
			},
		},

		// Empty input.
		{``, []*Record{}},
		{`[]`, []*Record{}},

		// Numbers in any JSON form.
		{`{"plane":[1e0, -0.5, 2E1, 0]}`,
			[]*Record{{geom.KindPlane, []float64{1, -0.5, 20, 0}, 1}},
		},
	} {
		got, err := Parse(strings.NewReader(test.input))
		require.NoError(t, err, "parsing %q", test.input)
		assert.Equal(t, test.want, got, "parsing %q", test.input)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		line  int
		is    error
	}{
		{`{"circle":[1,2,3]}`, 1, ErrTag},
		{`{}`, 1, ErrTag},
		{`{"point":[1,2,3],"line":[0,1,0,0,0,1]}`, 1, ErrTag},
		{`{"point":[1,2]}`, 1, ErrArity},
		{`{"line":[0,1,0,0,0]}`, 1, ErrArity},
		{"\n\n" + `[{"point":[1,2,3]},{"plane":[1,2,3]}]`, 3, ErrArity},
		{`{"point":["a",2,3]}`, 1, nil},
		{`{"point":null}`, 1, nil},
		{`{"point":[1,2,3]`, 1, nil},
		{`point 1 2 3`, 1, nil},
		{`[1,2,3]`, 1, nil},
	} {
		_, err := Parse(strings.NewReader(test.input))
		var perr *ParseError
		if !assert.True(t, errors.As(err, &perr), "parsing %q: got %v", test.input, err) {
			continue
		}
		assert.Equal(t, test.line, perr.Line, "parsing %q", test.input)
		if test.is != nil {
			assert.ErrorIs(t, err, test.is, "parsing %q", test.input)
		}
	}
}

func TestParseAnyDim(t *testing.T) {
	p := &Parser{}
	rs, err := p.Parse(strings.NewReader(`[{"point":[1,2]},{"line":[1,0,0,1]},{"plane":[1,2,3,4,5]}]`))
	require.NoError(t, err)
	require.Len(t, rs, 3)
	assert.Equal(t, []float64{1, 2}, rs[0].Values)

	p = &Parser{Dim: 2}
	_, err = p.Parse(strings.NewReader(`{"plane":[1,2,3,4]}`))
	assert.ErrorIs(t, err, ErrArity)
}

func TestPrimitives(t *testing.T) {
	rs, err := Parse(strings.NewReader(`[{"point":[1,2,3]},{"line":[0,1,0,0,0,1]},{"plane":[0,0,0,1]}]`))
	require.NoError(t, err)
	ps, err := Primitives(rs)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, geom.KindPoint, ps[0].Kind())
	assert.Equal(t, geom.KindLine, ps[1].Kind())
	assert.Equal(t, geom.KindPlane, ps[2].Kind())

	// Well-formed but not perpendicular.
	rs, err = Parse(strings.NewReader("\n" + `{"line":[0,1,0,0,1,0]}`))
	require.NoError(t, err)
	_, err = Primitives(rs)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.ErrorIs(t, err, geom.ErrValidation)
}

func TestRoundTrip(t *testing.T) {
	const input = `[{"point":[1,2,3]},{"line":[0,1,0,0,0,1]},{"plane":[1,1,1,-1]}]`
	rs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	ps, err := Primitives(rs)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, ps))
	assert.Equal(t, input+"\n", buf.String())

	b, err := Marshal(ps[0])
	require.NoError(t, err)
	assert.Equal(t, `{"point":[1,2,3]}`, string(b))
}
