// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxIterationsReached indicates the iteration cap was hit before |f(n)| ≤ tol.
	// The partial sum is still usable; see MaxIterationsError.
	ErrMaxIterationsReached = errors.New("series: maximum number of iterations reached")

	// ErrToleranceTooLarge indicates tol ≥ 1, which would stop after the first term.
	ErrToleranceTooLarge = errors.New("series: tolerance must be < 1")

	// ErrInvalidTolerance indicates tol ≤ 0 or NaN, which no term can satisfy.
	ErrInvalidTolerance = errors.New("series: tolerance must be > 0")
)

// MaxIterationsError carries the state of a summation at the moment it was cut off.
//
// It is produced only on cap overrun (or a degenerate Kahan tolerance) and is
// meant to be consumed right away: logged, then Output used as the result.
type MaxIterationsError struct {
	Output     float64 // partial sum at the cut-off
	AbsErr     float64 // |f(n)| of the last evaluated term
	Iterations int     // terms evaluated
	Time       float64 // evaluation time, set by callers that know it (zero otherwise)

	cause error
}

func (e *MaxIterationsError) Error() string {
	msg := fmt.Sprintf("%v: abs err=%.6e, iterations=%d", ErrMaxIterationsReached, e.AbsErr, e.Iterations)
	if e.cause != nil {
		msg += " (" + e.cause.Error() + ")"
	}

	return msg
}

// Unwrap exposes ErrMaxIterationsReached and, for degenerate input,
// ErrToleranceTooLarge or ErrInvalidTolerance.
func (e *MaxIterationsError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrMaxIterationsReached}
	}

	return []error{ErrMaxIterationsReached, e.cause}
}
