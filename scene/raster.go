// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/aclements/geomplot/geom"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// supersample is the factor by which rasters are drawn larger than
// requested and then scaled down.
const supersample = 2

var (
	axisColor  = color.Gray{0xc0}
	frameColor = color.Gray{0x80}
)

// panel maps one view into a square region of the canvas.
type panel struct {
	view   View
	rect   image.Rectangle
	sx, sy scale.Linear
	x0, y0 float64 // top-left of the square drawing area
	size   float64
}

func newPanel(v View, b Box, rect image.Rectangle) *panel {
	xmin, xmax, ymin, ymax := v.Range(b)
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	half := math.Max(xmax-xmin, ymax-ymin) / 2

	w, h := float64(rect.Dx()), float64(rect.Dy())
	size := math.Min(w, h)
	return &panel{
		view: v,
		rect: rect,
		sx:   scale.Linear{Min: cx - half, Max: cx + half},
		sy:   scale.Linear{Min: cy - half, Max: cy + half},
		x0:   float64(rect.Min.X) + (w-size)/2,
		y0:   float64(rect.Min.Y) + (h-size)/2,
		size: size,
	}
}

func (p *panel) pixel(pt [3]float64) (float64, float64) {
	x, y := p.view.Project(pt)
	return p.x0 + p.sx.Map(x)*p.size, p.y0 + (1-p.sy.Map(y))*p.size
}

// Raster draws each view of s side by side. Each view gets a
// width x height panel.
func (s *Scene) Raster(views []View, width, height int) *image.RGBA {
	W, H := width*supersample, height*supersample
	big := image.NewRGBA(image.Rect(0, 0, W*len(views), H))
	draw.Draw(big, big.Bounds(), image.White, image.Point{}, draw.Src)

	r := &rasterizer{dst: big, z: vector.NewRasterizer(big.Bounds().Dx(), big.Bounds().Dy())}
	extent := s.Extent()
	for i, v := range views {
		p := newPanel(v, extent, image.Rect(i*W, 0, (i+1)*W, H))
		r.drawPanel(p, s, extent)
	}

	// Scale down to smooth edges.
	dst := image.NewRGBA(image.Rect(0, 0, width*len(views), height))
	draw.BiLinear.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG writes the raster of s to w as a PNG.
func (s *Scene) WritePNG(w io.Writer, views []View, width, height int) error {
	return png.Encode(w, s.Raster(views, width, height))
}

// itemColor returns the color of the i'th of n items.
func itemColor(i, n int) color.NRGBA {
	x := 0.0
	if n > 1 {
		x = float64(i) / float64(n-1)
	}
	r, g, b, _ := palette.Viridis.Map(x).RGBA()
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
}

type rasterizer struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func (r *rasterizer) fill(c color.Color) {
	r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{})
	r.z.Reset(r.dst.Bounds().Dx(), r.dst.Bounds().Dy())
}

func (r *rasterizer) drawPanel(p *panel, s *Scene, extent Box) {
	lineWidth := float64(supersample)
	rect := p.rect

	// Frame.
	fx0, fy0 := float64(rect.Min.X), float64(rect.Min.Y)
	fx1, fy1 := float64(rect.Max.X), float64(rect.Max.Y)
	for _, seg := range [][4]float64{
		{fx0, fy0, fx1, fy0}, {fx1, fy0, fx1, fy1},
		{fx1, fy1, fx0, fy1}, {fx0, fy1, fx0, fy0},
	} {
		r.segment(seg[0], seg[1], seg[2], seg[3], lineWidth)
	}
	r.fill(frameColor)

	// Axes through the origin, out to the extent.
	for axis := 0; axis < 3; axis++ {
		var a, b [3]float64
		a[axis], b[axis] = extent.Min[axis], extent.Max[axis]
		ax, ay := p.pixel(a)
		bx, by := p.pixel(b)
		r.clippedSegment(rect, ax, ay, bx, by, lineWidth/2)
	}
	r.fill(axisColor)

	// Polygons first so that lines and points draw on top.
	for _, shape := range []geom.Shape{geom.ShapePolygon, geom.ShapePolyline, geom.ShapePoint} {
		for i, it := range s.Items {
			if it.Shape != shape {
				continue
			}
			c := itemColor(i, len(s.Items))
			switch shape {
			case geom.ShapePolygon:
				r.polygon(p, rect, it.Points)
				r.fill(color.NRGBA{c.R, c.G, c.B, 0x60})
				r.polyline(p, rect, append(it.Points[:len(it.Points):len(it.Points)], it.Points[0]), lineWidth)
				r.fill(c)
			case geom.ShapePolyline:
				r.polyline(p, rect, it.Points, lineWidth)
				r.fill(c)
			case geom.ShapePoint:
				for _, pt := range it.Points {
					x, y := p.pixel(pt)
					r.marker(rect, x, y, 3*lineWidth)
				}
				r.fill(c)
			}
		}
	}
}

func (r *rasterizer) polygon(p *panel, rect image.Rectangle, pts [][3]float64) {
	poly := make([][2]float64, len(pts))
	for i, pt := range pts {
		poly[i][0], poly[i][1] = p.pixel(pt)
	}
	poly = clipPolygon(rect, poly)
	if len(poly) < 3 {
		return
	}
	for i, pt := range poly {
		if i == 0 {
			r.z.MoveTo(float32(pt[0]), float32(pt[1]))
		} else {
			r.z.LineTo(float32(pt[0]), float32(pt[1]))
		}
	}
	r.z.ClosePath()
}

func (r *rasterizer) polyline(p *panel, rect image.Rectangle, pts [][3]float64, w float64) {
	for i := 1; i < len(pts); i++ {
		ax, ay := p.pixel(pts[i-1])
		bx, by := p.pixel(pts[i])
		r.clippedSegment(rect, ax, ay, bx, by, w)
	}
}

func (r *rasterizer) marker(rect image.Rectangle, x, y, rad float64) {
	if !image.Pt(int(x), int(y)).In(rect) {
		return
	}
	r.z.MoveTo(float32(x), float32(y-rad))
	r.z.LineTo(float32(x+rad), float32(y))
	r.z.LineTo(float32(x), float32(y+rad))
	r.z.LineTo(float32(x-rad), float32(y))
	r.z.ClosePath()
}

func (r *rasterizer) clippedSegment(rect image.Rectangle, ax, ay, bx, by, w float64) {
	ax, ay, bx, by, ok := clipSegment(rect, ax, ay, bx, by)
	if ok {
		r.segment(ax, ay, bx, by, w)
	}
}

// segment adds a w-wide quad from (ax,ay) to (bx,by).
func (r *rasterizer) segment(ax, ay, bx, by, w float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	r.z.MoveTo(float32(ax+nx), float32(ay+ny))
	r.z.LineTo(float32(bx+nx), float32(by+ny))
	r.z.LineTo(float32(bx-nx), float32(by-ny))
	r.z.LineTo(float32(ax-nx), float32(ay-ny))
	r.z.ClosePath()
}

// clipPolygon clips the polygon poly to rect using the
// Sutherland-Hodgman algorithm. The result is empty if poly lies
// entirely outside rect.
func clipPolygon(rect image.Rectangle, poly [][2]float64) [][2]float64 {
	poly = clipHalf(poly, 0, float64(rect.Min.X), true)
	poly = clipHalf(poly, 0, float64(rect.Max.X), false)
	poly = clipHalf(poly, 1, float64(rect.Min.Y), true)
	poly = clipHalf(poly, 1, float64(rect.Max.Y), false)
	return poly
}

// clipHalf clips poly to the half-plane pt[axis] >= bound if above,
// or pt[axis] <= bound otherwise.
func clipHalf(poly [][2]float64, axis int, bound float64, above bool) [][2]float64 {
	inside := func(pt [2]float64) bool {
		if above {
			return pt[axis] >= bound
		}
		return pt[axis] <= bound
	}
	var out [][2]float64
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		in := inside(cur)
		if in != inside(prev) {
			t := (bound - prev[axis]) / (cur[axis] - prev[axis])
			x := [2]float64{prev[0] + t*(cur[0]-prev[0]), prev[1] + t*(cur[1]-prev[1])}
			x[axis] = bound
			out = append(out, x)
		}
		if in {
			out = append(out, cur)
		}
	}
	return out
}

// clipSegment clips the segment from a to b to rect using the
// Liang-Barsky algorithm. ok is false if no part of the segment is
// inside rect.
func clipSegment(rect image.Rectangle, ax, ay, bx, by float64) (cax, cay, cbx, cby float64, ok bool) {
	dx, dy := bx-ax, by-ay
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, ax - float64(rect.Min.X)},
		{dx, float64(rect.Max.X) - ax},
		{-dy, ay - float64(rect.Min.Y)},
		{dy, float64(rect.Max.Y) - ay},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return ax + t0*dx, ay + t0*dy, ax + t1*dx, ay + t1*dy, true
}
