// Package config turns YAML run files into profile specifications.
//
// A run file names one heat problem and its sampling grid:
//
//	boundary: dirichlet
//	contribution: source
//	dimension: 2
//	length: 0.01
//	diffusivity: 0.0001162453618
//	params: {a0: 2898.8868275}
//	tolerance: 1e-12
//	method: kahan
//	times: [0.01, 0.08602493766]
//	grid: {from: 0, to: 0.01, count: 11, y: 0.0025}
//
// Files are decoded with unknown keys rejected, validated through struct
// tags, then mapped onto heat and profile types.
package config

import (
	"github.com/katalvlaran/heatseries/profile"
)

// Run is a validated run file.
type Run struct {
	Spec          profile.Spec
	Workers       int // 0 means the profile default
	MaxIterations int // 0 means the series default
}

// Options converts the non-zero run settings into profile options.
func (r Run) Options() []profile.Option {
	var opts []profile.Option
	if r.Workers > 0 {
		opts = append(opts, profile.WithWorkers(r.Workers))
	}
	if r.MaxIterations > 0 {
		opts = append(opts, profile.WithMaxIterations(r.MaxIterations))
	}
	return opts
}
