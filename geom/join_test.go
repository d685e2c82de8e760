// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(t *testing.T, xs ...float64) Point {
	t.Helper()
	p, err := NewPoint(xs...)
	require.NoError(t, err)
	return p
}

func onPlane(t *testing.T, pl Plane, p Point) {
	t.Helper()
	n := toVec3(pl.Normal())
	assert.InDelta(t, 0, n.dot(toVec3(p.Coords()))+pl.Offset(), tol, "%v not on %v", p, pl)
}

func TestJoin(t *testing.T) {
	p, q := pt(t, 0, 2, 0), pt(t, 1, 2, 0)
	l, err := Join(p, q)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, l.Direction())
	assert.Equal(t, []float64{0, 0, -2}, l.Moment())

	cp, err := l.ClosestPoint()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2, 0}, cp, tol)

	_, err = Join(p, p)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Join(pt(t, 1, 2), pt(t, 3, 4))
	assert.ErrorIs(t, err, ErrDimension)
}

func TestJoinArbitrary(t *testing.T) {
	// The joined line passes through both points, so the closest
	// point to the origin is their projection.
	p, q := pt(t, 1, 2, 3), pt(t, -4, 0.5, 2)
	l, err := Join(p, q)
	require.NoError(t, err)
	g, err := l.Geometry()
	require.NoError(t, err)
	d := toVec3(l.Direction())
	for _, x := range []Point{p, q} {
		off := toVec3(x.Coords()).sub(toVec3(g.Points[3]))
		assert.InDelta(t, 0, off.cross(d).norm(), 1e-9)
	}
}

func TestPlaneThrough(t *testing.T) {
	a, b, c := pt(t, 1, 0, 0), pt(t, 0, 1, 0), pt(t, 0, 0, 1)
	pl, err := PlaneThrough(a, b, c)
	require.NoError(t, err)
	for _, p := range []Point{a, b, c} {
		onPlane(t, pl, p)
	}
	// The plane x+y+z = 1 is closest to the origin at (1/3,1/3,1/3).
	cp, err := pl.ClosestPoint()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, cp, tol)

	_, err = PlaneThrough(a, b, pt(t, 2, -1, 0))
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestPlaneThroughSmall(t *testing.T) {
	// Nearby points still determine a plane: z = 0.
	a, b, c := pt(t, 0, 0, 0), pt(t, 1e-9, 0, 0), pt(t, 0, 1e-4, 0)
	pl, err := PlaneThrough(a, b, c)
	require.NoError(t, err)
	n := toVec3(pl.Normal()).unit()
	assert.InDelta(t, 1, n[2]*n[2], tol)
	assert.InDelta(t, 0, pl.Offset(), tol)

	_, err = PlaneThrough(a, b, pt(t, 2e-9, 0, 0))
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestMeet(t *testing.T) {
	// z = 1 and x = 2.
	a, err := NewPlane(0, 0, 1, -1)
	require.NoError(t, err)
	b, err := NewPlane(1, 0, 0, -2)
	require.NoError(t, err)

	l, err := Meet(a, b)
	require.NoError(t, err)
	g, err := l.Geometry()
	require.NoError(t, err)
	for _, x := range g.Points {
		p := pt(t, x...)
		onPlane(t, a, p)
		onPlane(t, b, p)
	}
	cp, err := l.ClosestPoint()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 0, 1}, cp, tol)

	_, err = Meet(a, a)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestMeetLinePlane(t *testing.T) {
	l, err := Join(pt(t, 0, 1, 0), pt(t, 1, 1, 0))
	require.NoError(t, err)
	pl, err := NewPlane(1, 0, 0, -2)
	require.NoError(t, err)

	x, err := MeetLinePlane(l, pl)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1, 0}, x.Coords(), tol)

	parallel, err := NewPlane(0, 1, 0, -5)
	require.NoError(t, err)
	_, err = MeetLinePlane(l, parallel)
	assert.ErrorIs(t, err, ErrDegenerate)
}
