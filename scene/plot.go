// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"io"
	"math"

	"github.com/aclements/geomplot/geom"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// Table returns the scene as a table with one row per vertex per
// view. Its columns are "view", "primitive" (the item label), "kind",
// "shape", "vertex", "x", and "y", where x and y are projected into
// the row's view. Polygons repeat their first vertex at the end so
// that they close when drawn as paths.
func (s *Scene) Table(views []View) *table.Table {
	var (
		viewCol   = []View{}
		labelCol  = []string{}
		kindCol   = []string{}
		shapeCol  = []string{}
		vertexCol = []int{}
		xCol      = []float64{}
		yCol      = []float64{}
	)
	for _, v := range views {
		for _, it := range s.Items {
			pts := it.Points
			if it.Shape == geom.ShapePolygon && len(pts) > 0 {
				pts = append(pts[:len(pts):len(pts)], pts[0])
			}
			label, kind, shape := it.Label(), it.Kind.String(), it.Shape.String()
			for i, p := range pts {
				x, y := v.Project(p)
				viewCol = append(viewCol, v)
				labelCol = append(labelCol, label)
				kindCol = append(kindCol, kind)
				shapeCol = append(shapeCol, shape)
				vertexCol = append(vertexCol, i)
				xCol = append(xCol, x)
				yCol = append(yCol, y)
			}
		}
	}

	return table.NewBuilder(nil).
		Add("view", viewCol).
		Add("primitive", labelCol).
		Add("kind", kindCol).
		Add("shape", shapeCol).
		Add("vertex", vertexCol).
		Add("x", xCol).
		Add("y", yCol).
		Done()
}

// viewSpan returns a single interval covering the extent of every
// view, so that all facets can share square scales.
func viewSpan(b Box, views []View) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range views {
		xmin, xmax, ymin, ymax := v.Range(b)
		lo = math.Min(lo, math.Min(xmin, ymin))
		hi = math.Max(hi, math.Max(xmax, ymax))
	}
	return lo, hi
}

func rows(g table.Grouping) int {
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

// Plot returns a go-gg plot of the scene with one facet per view.
// Planes are drawn as filled polygons, lines as paths, and points as
// point marks, all colored by primitive.
func (s *Scene) Plot(views []View, title string) *gg.Plot {
	plot := gg.NewPlot(s.Table(views))

	lo, hi := viewSpan(s.Extent(), views)
	plot.SetScale("x", gg.NewLinearScaler().SetMin(lo).SetMax(hi))
	plot.SetScale("y", gg.NewLinearScaler().SetMin(lo).SetMax(hi))

	plot.Add(gg.FacetX{Col: "view"})

	all := plot.Data()
	if g := table.FilterEq(all, "shape", geom.ShapePolygon.String()); rows(g) > 0 {
		plot.SetData(g)
		plot.Add(gg.LayerPaths{X: "x", Y: "y", Color: "primitive", Fill: "primitive"})
	}
	if g := table.FilterEq(all, "shape", geom.ShapePolyline.String()); rows(g) > 0 {
		plot.SetData(g)
		plot.Add(gg.LayerPaths{X: "x", Y: "y", Color: "primitive"})
	}
	if g := table.FilterEq(all, "shape", geom.ShapePoint.String()); rows(g) > 0 {
		plot.SetData(g)
		plot.Add(gg.LayerPoints{X: "x", Y: "y", Color: "primitive"})
	}
	plot.SetData(all)

	if title != "" {
		plot.Add(gg.Title(title))
	}
	return plot
}

// WriteSVG writes the plot of s to w. Each view gets a width x height
// panel.
func (s *Scene) WriteSVG(w io.Writer, views []View, title string, width, height int) error {
	return s.Plot(views, title).WriteSVG(w, width*len(views), height)
}
