// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene collects the geometry of a sequence of primitives and
// hands it to a rendering backend: a go-gg plot written as SVG, or a
// PNG raster.
package scene

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/aclements/geomplot/geom"
	"github.com/aclements/go-moremath/stats"
	"go.uber.org/zap"
)

// An Item is the 3D geometry of one primitive.
type Item struct {
	// Index is the position of the primitive in the input.
	Index int

	Kind  geom.Kind
	Shape geom.Shape

	// Points are the vertices of the geometry. Points with fewer
	// than three coordinates are padded with zeros.
	Points [][3]float64
}

// Label identifies the item in plots and tables.
func (it Item) Label() string {
	return fmt.Sprintf("%d %s", it.Index, it.Kind)
}

// A Scene is the renderable geometry of a set of primitives.
type Scene struct {
	Items []Item

	// Skipped is the number of primitives left out of the scene
	// because their geometry is degenerate.
	Skipped int
}

// A Builder builds Scenes.
type Builder struct {
	// Logger receives a warning for each skipped primitive. If
	// nil, nothing is logged.
	Logger *zap.Logger

	// Strict makes Build fail on degenerate primitives instead of
	// skipping them.
	Strict bool

	// Workers is the number of primitives rendered concurrently.
	Workers int
}

// Build renders ps into a Scene.
func (b *Builder) Build(ctx context.Context, ps []geom.Primitive) (*Scene, error) {
	log := b.Logger
	if log == nil {
		log = zap.NewNop()
	}

	gs, errs, err := geom.RenderEach(ctx, ps, b.Workers)
	if err != nil {
		return nil, err
	}

	s := &Scene{Items: []Item{}}
	for i, p := range ps {
		err := errs[i]
		var pts [][3]float64
		if err == nil {
			pts, err = to3(p.Kind(), gs[i].Points)
		}
		if err != nil {
			if b.Strict || !errors.Is(err, geom.ErrDegenerate) {
				return nil, &geom.RenderError{Index: i, Err: err}
			}
			log.Warn("skipping primitive",
				zap.Int("index", i),
				zap.Stringer("kind", p.Kind()),
				zap.Error(err))
			s.Skipped++
			continue
		}
		s.Items = append(s.Items, Item{i, p.Kind(), gs[i].Shape, pts})
	}

	log.Debug("built scene",
		zap.Int("primitives", len(ps)),
		zap.Int("items", len(s.Items)),
		zap.Int("skipped", s.Skipped))
	return s, nil
}

func to3(kind geom.Kind, pts [][]float64) ([][3]float64, error) {
	out := make([][3]float64, len(pts))
	for i, p := range pts {
		if len(p) > 3 {
			return nil, &geom.DegenerateError{
				Kind:   kind,
				Reason: fmt.Sprintf("cannot draw %d-dimensional geometry", len(p)),
				Err:    geom.ErrDimension,
			}
		}
		copy(out[i][:], p)
	}
	return out, nil
}

// A Box is an axis-aligned box in 3D.
type Box struct {
	Min, Max [3]float64
}

// Corners returns the eight corners of b.
func (b Box) Corners() [8][3]float64 {
	var cs [8][3]float64
	for i := range cs {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) == 0 {
				cs[i][axis] = b.Min[axis]
			} else {
				cs[i][axis] = b.Max[axis]
			}
		}
	}
	return cs
}

// margin is the fraction of padding added around the scene extent.
const margin = 0.1

// Extent returns a cube containing the origin and the interesting part
// of every item, padded by 10%. For lines, only the samples within
// one direction length of the closest point count; the far samples
// exist to leave the viewport.
func (s *Scene) Extent() Box {
	var axes [3][]float64
	add := func(p [3]float64) {
		for a := range axes {
			axes[a] = append(axes[a], p[a])
		}
	}
	add([3]float64{})

	for _, it := range s.Items {
		near := it.Kind == geom.KindLine && len(it.Points) == len(geom.LineSamples)
		for i, p := range it.Points {
			if near && math.Abs(geom.LineSamples[i]) > 1 {
				continue
			}
			add(p)
		}
	}

	var center [3]float64
	half := 0.0
	for a, xs := range axes {
		lo, hi := stats.Bounds(xs)
		center[a] = (lo + hi) / 2
		half = math.Max(half, (hi-lo)/2)
	}
	if half == 0 {
		half = 1
	}
	half *= 1 + margin

	var b Box
	for a := range center {
		b.Min[a] = center[a] - half
		b.Max[a] = center[a] + half
	}
	return b
}
