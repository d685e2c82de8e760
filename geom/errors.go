// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("invalid primitive")

	// ErrDegenerate is matched by every *DegenerateError.
	ErrDegenerate = errors.New("degenerate geometry")

	// ErrDimension is wrapped by a *DegenerateError when a
	// primitive has a dimension the projection math does not
	// support. Lines and planes are only projected in 3D.
	ErrDimension = errors.New("unsupported dimension")
)

// A ValidationError reports a primitive whose numeric data violates
// a structural invariant. It is returned by constructors and never
// by projection.
type ValidationError struct {
	Kind   Kind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationErrorf(kind Kind, format string, args ...interface{}) error {
	return &ValidationError{kind, fmt.Sprintf(format, args...)}
}

// A DegenerateError reports a structurally valid primitive whose
// numeric state makes a geometric computation undefined, such as a
// plane with a zero normal.
type DegenerateError struct {
	Kind   Kind
	Reason string

	// Err is an optional more specific cause, such as
	// ErrDimension.
	Err error
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("degenerate %s: %s", e.Kind, e.Reason)
}

func (e *DegenerateError) Is(target error) bool {
	return target == ErrDegenerate
}

func (e *DegenerateError) Unwrap() error {
	return e.Err
}

func degenerateErrorf(kind Kind, format string, args ...interface{}) error {
	return &DegenerateError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func dimensionError(kind Kind, dim int) error {
	return &DegenerateError{
		Kind:   kind,
		Reason: fmt.Sprintf("cannot project %d-dimensional %s, need 3", dim, kind),
		Err:    ErrDimension,
	}
}
