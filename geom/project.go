// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// DegenerateEpsilon is the length below which a vector is treated as
// zero by the projection math: a line direction or plane normal this
// short is degenerate, and a plane whose normal is parallel to the x
// axis to within this (relative) amount uses the fallback basis.
const DegenerateEpsilon = 1e-12

// LineSamples are the parameters t at which Line.Geometry samples
// p + t·d. The spacing is geometric so the line leaves any reasonable
// viewport at both ends while still showing detail near p.
var LineSamples = [...]float64{-1000, -10, -1, 0, 1, 10, 1000}

// PlaneScale is the distance from a plane's closest point to each
// vertex of the quad returned by Plane.Geometry.
const PlaneScale = 1.0

var (
	e1 = vec3{1, 0, 0}
	e2 = vec3{0, 1, 0}
	e3 = vec3{0, 0, 1}
)

// Geometry returns the point itself.
func (p Point) Geometry() (Geometry, error) {
	return Geometry{ShapePoint, [][]float64{p.Coords()}}, nil
}

func (l Line) parts3() (d, m vec3, err error) {
	if l.Dim() != 3 {
		return d, m, dimensionError(KindLine, l.Dim())
	}
	d, m = toVec3(l.Direction()), toVec3(l.Moment())
	if d.norm() <= DegenerateEpsilon {
		return d, m, degenerateErrorf(KindLine, "zero direction")
	}
	return d, m, nil
}

// ClosestPoint returns the point on l closest to the origin. l must
// be 3-dimensional with a nonzero direction.
func (l Line) ClosestPoint() ([]float64, error) {
	d, m, err := l.parts3()
	if err != nil {
		return nil, err
	}
	return closestOnLine(d, m).slice(), nil
}

func closestOnLine(d, m vec3) vec3 {
	dn, mn := d.norm(), m.norm()
	// The distance from the origin is ‖m‖/‖d‖.
	if mn <= DegenerateEpsilon*dn {
		return vec3{}
	}
	u := d.cross(m)
	un := u.norm()
	if un == 0 {
		return vec3{}
	}
	return u.scale(mn / dn / un)
}

// Geometry returns a 7 point polyline sampling l at p + t·d for each
// t in LineSamples, where p is l's closest point to the origin.
func (l Line) Geometry() (Geometry, error) {
	d, m, err := l.parts3()
	if err != nil {
		return Geometry{}, err
	}
	p := closestOnLine(d, m)
	pts := make([][]float64, len(LineSamples))
	for i, t := range LineSamples {
		pts[i] = p.add(d.scale(t)).slice()
	}
	return Geometry{ShapePolyline, pts}, nil
}

func (pl Plane) normal3() (vec3, error) {
	if pl.Dim() != 3 {
		return vec3{}, dimensionError(KindPlane, pl.Dim())
	}
	n := toVec3(pl.Normal())
	if n.norm() <= DegenerateEpsilon {
		return n, degenerateErrorf(KindPlane, "zero normal")
	}
	return n, nil
}

// Basis returns two unit vectors u and v that are perpendicular to
// each other and to pl's normal. If the normal is parallel to the x
// axis, u and v are the y and z axes.
func (pl Plane) Basis() (u, v []float64, err error) {
	n, err := pl.normal3()
	if err != nil {
		return nil, nil, err
	}
	bu, bv := planeBasis(n)
	return bu.slice(), bv.slice(), nil
}

func planeBasis(n vec3) (u, v vec3) {
	u = n.cross(e1)
	if u.norm() <= DegenerateEpsilon*n.norm() {
		return e2, e3
	}
	v = n.cross(u)
	return u.unit(), v.unit()
}

// ClosestPoint returns the point on pl closest to the origin.
func (pl Plane) ClosestPoint() ([]float64, error) {
	n, err := pl.normal3()
	if err != nil {
		return nil, err
	}
	return closestOnPlane(n, pl.Offset()).slice(), nil
}

func closestOnPlane(n vec3, o float64) vec3 {
	nn := n.norm()
	d := o / nn
	return n.scale(-d / nn)
}

// Geometry returns a quadrilateral centered on pl's closest point to
// the origin, with vertices p - s·u, p - s·v, p + s·u, p + s·v, where
// u and v are pl's Basis and s is PlaneScale.
func (pl Plane) Geometry() (Geometry, error) {
	n, err := pl.normal3()
	if err != nil {
		return Geometry{}, err
	}
	p := closestOnPlane(n, pl.Offset())
	u, v := planeBasis(n)
	u, v = u.scale(PlaneScale), v.scale(PlaneScale)
	return Geometry{ShapePolygon, [][]float64{
		p.sub(u).slice(),
		p.sub(v).slice(),
		p.add(u).slice(),
		p.add(v).slice(),
	}}, nil
}
