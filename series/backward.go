package series

import "math"

// SumBackward sums f(nMax) + f(nMax-1) + … + f(0), smallest terms first.
// It performs exactly nMax+1 additions and checks no tolerance; it exists to
// probe whether a forward truncation agrees with a fixed window.
// A negative nMax yields 0 and an empty State.
//
// Complexity: O(nMax) time, O(1) memory.
func (s *Summator) SumBackward(nMax int) float64 {
	if nMax < 0 {
		s.state = State{}
		return 0
	}

	last := s.fn(nMax) // truncation term, reported as AbsErr
	out := last
	for n := nMax - 1; n >= 0; n-- {
		out += s.fn(n)
	}
	s.state = State{AbsErr: math.Abs(last), Iterations: nMax + 1}

	return out
}
