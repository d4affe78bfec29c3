// SPDX-License-Identifier: MIT

package profile

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/heatseries/series"
)

// Option customizes a Run. Constructors panic on nonsensical values.
type Option func(*runConfig)

type runConfig struct {
	workers int
	logger  *slog.Logger
	maxIter int
}

func defaultRunConfig() runConfig {
	return runConfig{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
		maxIter: series.DefaultMaxIterations,
	}
}

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("profile: WithWorkers: n must be > 0")
	}
	return func(c *runConfig) { c.workers = n }
}

// WithLogger sets the logger handed to every worker's generator.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("profile: WithLogger(nil)")
	}
	return func(c *runConfig) { c.logger = l }
}

// WithMaxIterations sets the forward-summation cap of every generator.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("profile: WithMaxIterations: n must be > 0")
	}
	return func(c *runConfig) { c.maxIter = n }
}
