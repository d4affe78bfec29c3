// SPDX-License-Identifier: MIT

package series

// DefaultMaxIterations caps SumForward when no WithMaxIterations option is given.
const DefaultMaxIterations = 50000

// TermFunc returns the n-th term of a series, n ≥ 0.
// Implementations must be defined for every n ≥ 0 and are expected to
// tend to zero as n grows; absolute convergence is assumed, not verified.
type TermFunc func(n int) float64

// State holds the diagnostics of the most recent summation.
//
// Fields:
//   - AbsErr    : magnitude of the last term added (forward/Kahan), or of
//     the truncation term f(nMax) for a backward sum.
//   - Iterations: number of terms evaluated by that call.
type State struct {
	AbsErr     float64
	Iterations int
}
