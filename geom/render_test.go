// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrimitives(t *testing.T) []Primitive {
	t.Helper()
	p, err := NewPoint(1, 2, 3)
	require.NoError(t, err)
	l, err := NewLine(0, 1, 0, 0, 0, 1)
	require.NoError(t, err)
	pl, err := NewPlane(1, 1, 1, -1)
	require.NoError(t, err)
	return []Primitive{p, l, pl}
}

func TestRender(t *testing.T) {
	ps := mustPrimitives(t)
	want := []struct {
		shape Shape
		n     int
	}{
		{ShapePoint, 1},
		{ShapePolyline, len(LineSamples)},
		{ShapePolygon, 4},
	}
	for i, p := range ps {
		g, err := Render(p)
		require.NoError(t, err)
		assert.Equal(t, want[i].shape, g.Shape, "%v", p)
		assert.Len(t, g.Points, want[i].n, "%v", p)

		direct, err := p.Geometry()
		require.NoError(t, err)
		assert.Equal(t, direct, g)
	}

	_, err := Render(nil)
	assert.Error(t, err)

	assert.Equal(t, "polyline", ShapePolyline.String())
}

func TestRenderAll(t *testing.T) {
	ps := mustPrimitives(t)
	for _, workers := range []int{0, 1, 2, 8} {
		gs, err := RenderAll(context.Background(), ps, workers)
		require.NoError(t, err, "workers=%d", workers)
		require.Len(t, gs, len(ps))
		for i, p := range ps {
			want, _ := Render(p)
			assert.Equal(t, want, gs[i], "workers=%d primitive %d", workers, i)
		}
	}
}

func TestRenderAllError(t *testing.T) {
	ps := mustPrimitives(t)
	zero, err := NewPlane(0, 0, 0, 1)
	require.NoError(t, err)
	ps = append(ps, zero, ps[0])

	for _, workers := range []int{1, 4} {
		gs, err := RenderAll(context.Background(), ps, workers)
		assert.Nil(t, gs)
		var rerr *RenderError
		require.True(t, errors.As(err, &rerr), "workers=%d: %v", workers, err)
		assert.Equal(t, 3, rerr.Index)
		assert.ErrorIs(t, err, ErrDegenerate)
	}
}

func TestRenderAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RenderAll(ctx, mustPrimitives(t), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderEach(t *testing.T) {
	ps := mustPrimitives(t)
	l, err := NewLine(0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	ps = append([]Primitive{l}, ps...)

	for _, workers := range []int{1, 3} {
		gs, errs, err := RenderEach(context.Background(), ps, workers)
		require.NoError(t, err)
		require.Len(t, gs, len(ps))
		require.Len(t, errs, len(ps))
		assert.ErrorIs(t, errs[0], ErrDegenerate)
		for i := 1; i < len(ps); i++ {
			assert.NoError(t, errs[i])
			assert.NotEmpty(t, gs[i].Points)
		}
	}
}
