// SPDX-License-Identifier: MIT

package heat

import (
	"log/slog"

	"github.com/katalvlaran/heatseries/series"
)

// Option customizes a Generator. Constructors panic on nonsensical values.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	maxIter int
}

func defaultConfig() config {
	return config{logger: slog.Default(), maxIter: series.DefaultMaxIterations}
}

// WithLogger sets the logger that reports truncated summations.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("heat: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMaxIterations sets the forward-summation cap.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("heat: WithMaxIterations: n must be > 0")
	}
	return func(c *config) { c.maxIter = n }
}
