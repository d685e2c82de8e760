// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements points, lines, and planes stored as flat
// numeric vectors, and converts them into bounded geometry that can
// be handed to a renderer.
//
// A Line is stored in Plücker form: a direction followed by a moment
// of the same length. A Plane is stored as a normal followed by a
// single offset o, and contains the points x with n·x + o = 0.
//
// All values in this package are immutable once constructed. Every
// constructor validates its input and either returns a valid value
// or an error; there is no way to observe a primitive that violates
// its invariants.
package geom

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an immutable, non-empty sequence of finite float64
// values. The zero Vector is empty and is never returned by
// NewVector.
type Vector struct {
	xs []float64
}

// NewVector returns a Vector holding a copy of xs. It returns a
// *ValidationError if xs is empty or contains NaN or ±Inf.
func NewVector(xs []float64) (Vector, error) {
	if err := checkFinite(kindVector, xs); err != nil {
		return Vector{}, err
	}
	return Vector{append([]float64(nil), xs...)}, nil
}

func checkFinite(kind Kind, xs []float64) error {
	if len(xs) == 0 {
		return validationErrorf(kind, "need at least one coordinate")
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return validationErrorf(kind, "coordinate %d is not finite: %v", i, x)
		}
	}
	return nil
}

// Len returns the number of elements in v.
func (v Vector) Len() int {
	return len(v.xs)
}

// At returns the i'th element of v. It panics if i is out of range.
func (v Vector) At(i int) float64 {
	return v.xs[i]
}

// Values returns a copy of the elements of v. Modifying the result
// does not affect v.
func (v Vector) Values() []float64 {
	return append([]float64(nil), v.xs...)
}

// Equal reports whether v and w have the same length and are
// element-wise equal.
func (v Vector) Equal(w Vector) bool {
	if len(v.xs) != len(w.xs) {
		return false
	}
	for i, x := range v.xs {
		if x != w.xs[i] {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteByte(']')
	return b.String()
}

// slice returns a copy of v.xs[i:j].
func (v Vector) slice(i, j int) []float64 {
	return append([]float64(nil), v.xs[i:j]...)
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
