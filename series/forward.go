package series

import (
	"fmt"
	"math"
)

// SumForward accumulates f(0) + f(1) + … until |f(n)| ≤ tol.
//
// Algorithm Outline:
//  1. Guard: tol < 1 and not NaN (panic otherwise, the configuration is
//     meaningless). tol ≤ 0 is allowed: the cap bounds the loop.
//  2. eps = 1 (sentinel, forces at least one term), out = 0, n = 0.
//  3. While eps > tol:
//     out += f(n); eps = |f(n)|; n++
//     if still eps > tol and n > MaxIterations → stop, report truncation.
//  4. State = {eps, n}.
//
// Returns the (possibly partial) sum and, on cap overrun, a
// *MaxIterationsError whose Output equals the returned sum.
// The callback is never invoked more than MaxIterations+1 times.
//
// Complexity: O(N) time, O(1) memory.
func (s *Summator) SumForward(tol float64) (float64, error) {
	// Stage 1: contract
	if tol >= 1.0 || math.IsNaN(tol) {
		panic(fmt.Sprintf("series: SumForward: tol must be < 1, got %g", tol))
	}

	// Stage 2: accumulate
	var (
		out  float64
		term float64
		eps  = 1.0 // eps > tol
		n    int
	)
	for eps > tol {
		term = s.fn(n)
		out += term
		eps = math.Abs(term)
		n++
		if eps > tol && n > s.maxIter {
			s.state = State{AbsErr: eps, Iterations: n}
			return out, &MaxIterationsError{Output: out, AbsErr: eps, Iterations: n}
		}
	}

	// Stage 3: finalize
	s.state = State{AbsErr: eps, Iterations: n}

	return out, nil
}
