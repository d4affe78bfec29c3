package series

import "math"

// SumKahan accumulates the same terms as SumForward with Kahan compensated
// summation (https://en.wikipedia.org/wiki/Kahan_summation_algorithm):
//
//	y = f(n) - c
//	t = out + y
//	c = (t - out) - y
//	out = t
//
// The stopping rule is the one of SumForward (|f(n)| ≤ tol). There is no
// iteration cap: every supported series has monotonically shrinking terms.
//
// tol ≥ 1 makes no iteration meaningful, and tol ≤ 0 (or NaN) would never
// stop on a series whose terms do not hit exactly 0. SumKahan then returns
// immediately with a *MaxIterationsError that also matches
// ErrToleranceTooLarge or ErrInvalidTolerance.
//
// Complexity: O(N) time, O(1) memory.
func (s *Summator) SumKahan(tol float64) (float64, error) {
	switch {
	case tol >= 1.0:
		s.state = State{AbsErr: 1.0}
		return 0, &MaxIterationsError{AbsErr: 1.0, cause: ErrToleranceTooLarge}
	case !(tol > 0):
		s.state = State{AbsErr: 1.0}
		return 0, &MaxIterationsError{AbsErr: 1.0, cause: ErrInvalidTolerance}
	}

	var (
		out  float64
		c    float64 // running compensation
		y, t float64
		term float64
		eps  = 1.0
		n    int
	)
	for eps > tol {
		term = s.fn(n)
		y = term - c
		t = out + y
		c = (t - out) - y
		out = t
		eps = math.Abs(term)
		n++
	}
	s.state = State{AbsErr: eps, Iterations: n}

	return out, nil
}
