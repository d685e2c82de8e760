// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"math"
	"strings"
)

// A View is an orthographic projection of 3D space onto a plane.
type View int

const (
	// ViewXY looks down the z axis.
	ViewXY View = iota
	// ViewXZ looks along the y axis.
	ViewXZ
	// ViewYZ looks along the x axis.
	ViewYZ
	// ViewIso looks along (-1,-1,-1), with z up.
	ViewIso
)

// DefaultViews are the views drawn when none are requested.
var DefaultViews = []View{ViewXY, ViewXZ, ViewYZ}

var viewNames = []string{"xy", "xz", "yz", "iso"}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// ParseView returns the view named s.
func ParseView(s string) (View, error) {
	for i, name := range viewNames {
		if strings.EqualFold(s, name) {
			return View(i), nil
		}
	}
	return 0, fmt.Errorf("unknown view %q (want one of %s)", s, strings.Join(viewNames, ", "))
}

// ParseViews parses a list of view names. An empty list yields
// DefaultViews.
func ParseViews(names []string) ([]View, error) {
	if len(names) == 0 {
		return append([]View(nil), DefaultViews...), nil
	}
	views := make([]View, 0, len(names))
	for _, name := range names {
		v, err := ParseView(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

var (
	isoRight = [3]float64{-1 / math.Sqrt2, 1 / math.Sqrt2, 0}
	isoUp    = [3]float64{-1 / math.Sqrt(6), -1 / math.Sqrt(6), 2 / math.Sqrt(6)}
)

// Project maps p to 2D coordinates in view v.
func (v View) Project(p [3]float64) (x, y float64) {
	switch v {
	case ViewXY:
		return p[0], p[1]
	case ViewXZ:
		return p[0], p[2]
	case ViewYZ:
		return p[1], p[2]
	case ViewIso:
		return dot3(isoRight, p), dot3(isoUp, p)
	}
	panic(fmt.Sprintf("bad view %d", int(v)))
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Range returns the 2D bounds of b's corners in view v.
func (v View) Range(b Box) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, c := range b.Corners() {
		x, y := v.Project(c)
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	return
}
