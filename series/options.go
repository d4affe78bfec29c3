// SPDX-License-Identifier: MIT

package series

import "log/slog"

const (
	panicMaxIterationsInvalid = "series: WithMaxIterations: n must be > 0"
	panicLoggerNil            = "series: WithLogger(nil)"
)

// Option customizes a Summator at construction time.
// Constructors panic on nonsensical values (programmer error).
type Option func(*Summator)

// WithMaxIterations sets the SumForward iteration cap (default DefaultMaxIterations).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}
	return func(s *Summator) {
		s.maxIter = n
	}
}

// WithLogger sets the logger used to report truncations from Forward and Kahan.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(s *Summator) {
		s.logger = l
	}
}
