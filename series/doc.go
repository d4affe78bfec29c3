// Package series evaluates truncated infinite series Σ_{n=0}^{∞} f(n)
// of real-valued terms produced by a caller-supplied callback.
//
// 🚀 What is series?
//
//	A small, allocation-free summation engine used by the heat term
//	generators. It offers three independent estimators so numerically
//	delicate series (alternating signs, 1/n³ decay, exponential damping)
//	can be cross-checked:
//	  • Forward : plain running sum, truncated once |f(n)| ≤ tol,
//	               capped at MaxIterations terms.
//	  • Kahan   : same stopping rule, compensated accumulation.
//	  • Backward: fixed window n = nMax … 0, no tolerance.
//
// ✨ Key features:
//   - per-Summator diagnostics (last absolute error, iteration count)
//   - truncation is recoverable: the partial sum travels inside
//     *MaxIterationsError and Forward/Kahan substitute it as the result
//   - structured logging of truncations through an injected *slog.Logger
//
// ⚙️ Usage:
//
//	s := series.New(func(n int) float64 { return math.Pow(0.5, float64(n)) })
//
//	sum, err := s.SumForward(1e-12)   // raw: partial sum + error on cap overrun
//	sum = s.Forward(1e-12)            // best effort: logs and returns the partial sum
//	fmt.Println(sum, s.LastIterations(), s.LastAbsoluteError())
//
// Contract:
//
//	tol must be < 1. SumForward panics otherwise (programmer error);
//	SumKahan reports the degenerate configuration as ErrToleranceTooLarge.
//
// Concurrency:
//
//	A Summator is not safe for concurrent use: every call overwrites its
//	State. Give each goroutine its own Summator.
//
// Complexity:
//
//	Time   = O(N) term evaluations, N = number of terms until |f(N)| ≤ tol
//	Memory = O(1)
package series
