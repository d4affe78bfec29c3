// SPDX-License-Identifier: MIT

package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a Spec without times or without points.
	ErrEmptyGrid = errors.New("profile: empty sampling grid")

	// ErrInvalidTolerance indicates a tolerance outside (0, 1).
	ErrInvalidTolerance = errors.New("profile: tolerance must be in (0, 1)")

	// ErrIndexOutOfBounds indicates a Table access outside its shape.
	ErrIndexOutOfBounds = errors.New("profile: index out of bounds")

	// ErrInvalidCount indicates a non-positive Linspace count.
	ErrInvalidCount = errors.New("profile: count must be > 0")
)

// SampleError reports which sample of a Run failed.
type SampleError struct {
	Time  float64
	Point Point
	Err   error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("profile: sample t=%g at %v: %v", e.Time, e.Point, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }
