package series

import (
	"errors"
	"log/slog"
)

// Summator sums the terms of one TermFunc and remembers the diagnostics
// of its latest call. The zero value is not usable; call New.
type Summator struct {
	fn      TermFunc     // term callback
	maxIter int          // SumForward cap
	logger  *slog.Logger // truncation reports
	state   State        // overwritten by every Sum* call
}

// New binds fn to a fresh Summator.
// Panics if fn is nil.
// Complexity: O(len(opts)).
func New(fn TermFunc, opts ...Option) *Summator {
	if fn == nil {
		panic("series: New(nil TermFunc)")
	}
	s := &Summator{
		fn:      fn,
		maxIter: DefaultMaxIterations,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MaxIterations returns the configured SumForward cap.
func (s *Summator) MaxIterations() int { return s.maxIter }

// State returns the diagnostics of the latest summation (zero before any call).
func (s *Summator) State() State { return s.state }

// LastAbsoluteError returns State().AbsErr.
func (s *Summator) LastAbsoluteError() float64 { return s.state.AbsErr }

// LastIterations returns State().Iterations.
func (s *Summator) LastIterations() int { return s.state.Iterations }

// Forward is SumForward with the truncation policy applied: a cap overrun is
// logged and its partial sum returned, so the caller always gets a result.
// The diagnostics stay available through State.
func (s *Summator) Forward(tol float64) float64 {
	out, err := s.SumForward(tol)
	if err != nil {
		return s.recover(err, 0)
	}

	return out
}

// Kahan is SumKahan with the same truncation policy as Forward.
func (s *Summator) Kahan(tol float64) float64 {
	out, err := s.SumKahan(tol)
	if err != nil {
		return s.recover(err, 0)
	}

	return out
}

// Recover logs a truncation produced by this Summator, stamps t on it and
// returns its partial output. Errors that are not *MaxIterationsError
// yield 0 after being logged.
func (s *Summator) Recover(err error, t float64) float64 {
	return s.recover(err, t)
}

func (s *Summator) recover(err error, t float64) float64 {
	var mi *MaxIterationsError
	if !errors.As(err, &mi) {
		s.logger.Error("series: summation failed", "error", err)
		return 0
	}
	mi.Time = t
	s.logger.Warn("series: truncated summation",
		"abs_err", mi.AbsErr,
		"iterations", mi.Iterations,
		"time", mi.Time,
		"output", mi.Output,
		"degenerate", errors.Is(err, ErrToleranceTooLarge) || errors.Is(err, ErrInvalidTolerance),
	)

	return mi.Output
}
