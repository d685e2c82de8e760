// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Join and meet operations in 3D. Points are Euclidean (implicit
// weight 1).

func point3(kind Kind, p Point) (vec3, error) {
	if p.Dim() != 3 {
		return vec3{}, dimensionError(kind, p.Dim())
	}
	return toVec3(p.Coords()), nil
}

// Join returns the line through p and q, directed from p to q.
func Join(p, q Point) (Line, error) {
	a, err := point3(KindLine, p)
	if err != nil {
		return Line{}, err
	}
	b, err := point3(KindLine, q)
	if err != nil {
		return Line{}, err
	}
	d := b.sub(a)
	if d.norm() <= DegenerateEpsilon {
		return Line{}, degenerateErrorf(KindLine, "%v and %v do not determine a line", p, q)
	}
	return LineFromParts(d.slice(), a.cross(b).slice())
}

// JoinLinePoint returns the plane containing l and p.
func JoinLinePoint(l Line, p Point) (Plane, error) {
	d, m, err := l.parts3()
	if err != nil {
		return Plane{}, err
	}
	x, err := point3(KindPlane, p)
	if err != nil {
		return Plane{}, err
	}
	n := d.cross(x).add(m)
	if n.norm() <= DegenerateEpsilon*(d.norm()*x.norm()+m.norm()) {
		return Plane{}, degenerateErrorf(KindPlane, "%v lies on %v", p, l)
	}
	return PlaneFromParts(n.slice(), -m.dot(x))
}

// PlaneThrough returns the plane through a, b, and c.
func PlaneThrough(a, b, c Point) (Plane, error) {
	l, err := Join(a, b)
	if err != nil {
		return Plane{}, err
	}
	return JoinLinePoint(l, c)
}

// Meet returns the line where planes a and b intersect.
func Meet(a, b Plane) (Line, error) {
	n1, err := a.normal3()
	if err != nil {
		return Line{}, err
	}
	n2, err := b.normal3()
	if err != nil {
		return Line{}, err
	}
	d := n1.cross(n2)
	if d.norm() <= DegenerateEpsilon*n1.norm()*n2.norm() {
		return Line{}, degenerateErrorf(KindLine, "%v and %v are parallel", a, b)
	}
	m := n2.scale(a.Offset()).sub(n1.scale(b.Offset()))
	return LineFromParts(d.slice(), m.slice())
}

// MeetLinePlane returns the point where l crosses pl.
func MeetLinePlane(l Line, pl Plane) (Point, error) {
	d, m, err := l.parts3()
	if err != nil {
		return Point{}, err
	}
	n, err := pl.normal3()
	if err != nil {
		return Point{}, err
	}
	w := -n.dot(d)
	if math.Abs(w) <= DegenerateEpsilon*n.norm()*d.norm() {
		return Point{}, degenerateErrorf(KindPoint, "%v is parallel to %v", l, pl)
	}
	x := m.cross(n).add(d.scale(pl.Offset())).scale(1 / w)
	return NewPoint(x.slice()...)
}
