// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// vec3 is a 3D vector used by the projection math.
type vec3 [3]float64

func toVec3(xs []float64) vec3 {
	return vec3{xs[0], xs[1], xs[2]}
}

func (a vec3) add(b vec3) vec3 {
	return vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a vec3) sub(b vec3) vec3 {
	return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a vec3) scale(s float64) vec3 {
	return vec3{a[0] * s, a[1] * s, a[2] * s}
}

func (a vec3) dot(b vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec3) norm() float64 {
	return math.Sqrt(a.dot(a))
}

// unit returns a scaled to length 1. The caller must ensure a is not
// near zero.
func (a vec3) unit() vec3 {
	return a.scale(1 / a.norm())
}

func (a vec3) slice() []float64 {
	return []float64{a[0], a[1], a[2]}
}
