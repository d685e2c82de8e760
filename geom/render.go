// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Shape is the kind of renderable geometry.
type Shape int

const (
	// ShapePoint is a single point.
	ShapePoint Shape = iota
	// ShapePolyline is an open sequence of connected points.
	ShapePolyline
	// ShapePolygon is a closed polygon. The last vertex connects
	// back to the first; it is not repeated.
	ShapePolygon
)

func (s Shape) String() string {
	switch s {
	case ShapePoint:
		return "point"
	case ShapePolyline:
		return "polyline"
	case ShapePolygon:
		return "polygon"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Geometry is bounded geometry ready to hand to a renderer. Each
// element of Points is one vertex. The caller owns Points.
type Geometry struct {
	Shape  Shape
	Points [][]float64
}

// Render returns the geometry of p.
func Render(p Primitive) (Geometry, error) {
	switch p := p.(type) {
	case Point:
		return p.Geometry()
	case Line:
		return p.Geometry()
	case Plane:
		return p.Geometry()
	case nil:
		return Geometry{}, fmt.Errorf("render: nil primitive")
	}
	return Geometry{}, fmt.Errorf("render: unknown primitive type %T", p)
}

// RenderEach renders every primitive in ps and returns the geometry
// and error for each, by index. If workers > 1, up to workers
// primitives are rendered concurrently. The final error is non-nil
// only if ctx is done before every primitive has been rendered.
func RenderEach(ctx context.Context, ps []Primitive, workers int) ([]Geometry, []error, error) {
	gs := make([]Geometry, len(ps))
	errs := make([]error, len(ps))

	if workers <= 1 {
		for i, p := range ps {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			gs[i], errs[i] = Render(p)
		}
		return gs, errs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range ps {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			gs[i], errs[i] = Render(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return gs, errs, nil
}

// RenderAll is like RenderEach, but fails if any primitive fails. The
// error is a *RenderError for the lowest-indexed failure.
func RenderAll(ctx context.Context, ps []Primitive, workers int) ([]Geometry, error) {
	gs, errs, err := RenderEach(ctx, ps, workers)
	if err != nil {
		return nil, err
	}
	for i, err := range errs {
		if err != nil {
			return nil, &RenderError{i, err}
		}
	}
	return gs, nil
}

// A RenderError records which primitive in a batch failed to render.
type RenderError struct {
	Index int
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("primitive %d: %v", e.Index, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
