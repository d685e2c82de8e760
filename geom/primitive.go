// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// OrthoTolerance bounds how far a Line's direction and moment may be
// from perpendicular. A line is accepted if
//
//	|d·m| <= OrthoTolerance * ‖d‖‖m‖
//
// that is, if the cosine of the angle between d and m is at most
// OrthoTolerance in magnitude. The test is scale-invariant. Exactly
// perpendicular inputs, and a zero direction or moment, are always
// accepted.
const OrthoTolerance = 1e-9

// Kind identifies a primitive variant.
type Kind int

const (
	kindVector Kind = iota
	KindPoint
	KindLine
	KindPlane
)

var kindNames = []string{"vector", "point", "line", "plane"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named by s, which must be one of
// "point", "line", or "plane".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "point":
		return KindPoint, nil
	case "line":
		return KindLine, nil
	case "plane":
		return KindPlane, nil
	}
	return 0, fmt.Errorf("unknown primitive kind %q", s)
}

// Primitive is implemented by Point, Line, and Plane, and only by
// them.
type Primitive interface {
	// Kind returns the variant of this primitive.
	Kind() Kind

	// Vector returns the backing vector of this primitive.
	Vector() Vector

	// Geometry returns bounded geometry approximating this
	// primitive.
	Geometry() (Geometry, error)

	primitive()
}

// New constructs a primitive of the given kind from xs.
func New(kind Kind, xs []float64) (Primitive, error) {
	var (
		p   Primitive
		err error
	)
	switch kind {
	case KindPoint:
		p, err = NewPoint(xs...)
	case KindLine:
		p, err = NewLine(xs...)
	case KindPlane:
		p, err = NewPlane(xs...)
	default:
		return nil, fmt.Errorf("cannot construct %v", kind)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// A Point is a position in n-dimensional space.
type Point struct {
	v Vector
}

// NewPoint returns the point with coordinates xs.
func NewPoint(xs ...float64) (Point, error) {
	if err := checkFinite(KindPoint, xs); err != nil {
		return Point{}, err
	}
	return Point{Vector{append([]float64(nil), xs...)}}, nil
}

func (p Point) Kind() Kind     { return KindPoint }
func (p Point) Vector() Vector { return p.v }
func (Point) primitive()       {}

// Dim returns the number of coordinates of p.
func (p Point) Dim() int { return p.v.Len() }

// Coords returns a copy of the coordinates of p.
func (p Point) Coords() []float64 { return p.v.Values() }

// WithVector returns a new Point with coordinates xs.
func (p Point) WithVector(xs []float64) (Point, error) {
	return NewPoint(xs...)
}

func (p Point) String() string { return "point" + p.v.String() }

// A Line is an infinite line stored as a direction d followed by a
// moment m of the same length. The moment of the line through x with
// direction d is x × d, so d and m are always perpendicular.
type Line struct {
	v Vector
}

// NewLine returns the line whose direction is the first half of xs
// and whose moment is the second half. It returns a
// *ValidationError if xs has odd length or the halves are not
// perpendicular (see OrthoTolerance).
func NewLine(xs ...float64) (Line, error) {
	if err := checkFinite(KindLine, xs); err != nil {
		return Line{}, err
	}
	if len(xs)%2 != 0 {
		return Line{}, validationErrorf(KindLine, "length %d is odd; need a direction and a moment of equal length", len(xs))
	}
	k := len(xs) / 2
	d, m := xs[:k], xs[k:]
	if pd, limit := dot(d, m), OrthoTolerance*norm(d)*norm(m); math.Abs(pd) > limit {
		return Line{}, validationErrorf(KindLine, "direction %v and moment %v are not perpendicular (d·m = %g)", d, m, pd)
	}
	return Line{Vector{append([]float64(nil), xs...)}}, nil
}

// LineFromParts returns the line with the given direction and
// moment.
func LineFromParts(direction, moment []float64) (Line, error) {
	if len(direction) != len(moment) {
		return Line{}, validationErrorf(KindLine, "direction has %d coordinates but moment has %d", len(direction), len(moment))
	}
	return NewLine(vec.Concat(direction, moment)...)
}

func (l Line) Kind() Kind     { return KindLine }
func (l Line) Vector() Vector { return l.v }
func (Line) primitive()       {}

// Dim returns the dimension of the space containing l.
func (l Line) Dim() int { return l.v.Len() / 2 }

// Direction returns a copy of the direction of l.
func (l Line) Direction() []float64 { return l.v.slice(0, l.Dim()) }

// Moment returns a copy of the moment of l.
func (l Line) Moment() []float64 { return l.v.slice(l.Dim(), l.v.Len()) }

// WithVector returns a new Line backed by xs.
func (l Line) WithVector(xs []float64) (Line, error) {
	return NewLine(xs...)
}

func (l Line) String() string { return "line" + l.v.String() }

// A Plane is stored as a normal n followed by an offset o and
// contains the points x with n·x + o = 0.
//
// A Plane with a zero normal can be constructed, but it has no
// geometry; see Plane.Geometry.
type Plane struct {
	v Vector
}

// NewPlane returns the plane whose normal is all but the last element
// of xs and whose offset is the last element.
func NewPlane(xs ...float64) (Plane, error) {
	if err := checkFinite(KindPlane, xs); err != nil {
		return Plane{}, err
	}
	return Plane{Vector{append([]float64(nil), xs...)}}, nil
}

// PlaneFromParts returns the plane with the given normal and offset.
func PlaneFromParts(normal []float64, offset float64) (Plane, error) {
	return NewPlane(vec.Concat(normal, []float64{offset})...)
}

func (pl Plane) Kind() Kind     { return KindPlane }
func (pl Plane) Vector() Vector { return pl.v }
func (Plane) primitive()        {}

// Dim returns the dimension of the space containing pl.
func (pl Plane) Dim() int { return pl.v.Len() - 1 }

// Normal returns a copy of the normal of pl.
func (pl Plane) Normal() []float64 { return pl.v.slice(0, pl.Dim()) }

// Offset returns the offset of pl.
func (pl Plane) Offset() float64 { return pl.v.At(pl.Dim()) }

// WithVector returns a new Plane backed by xs.
func (pl Plane) WithVector(xs []float64) (Plane, error) {
	return NewPlane(xs...)
}

func (pl Plane) String() string { return "plane" + pl.v.String() }
