// Package profile samples a heat contribution over a grid of points and
// times and collects the results in a dense Table.
//
// 🚀 What is profile?
//
//	The batch front end of heatseries. A Spec names the problem (node
//	template, boundary kind, contribution, params, tolerance, method) and
//	the sampling grid. Run fans the samples out over a worker pool; every
//	worker owns its own heat.Generator, so no generator is ever shared
//	between goroutines.
//
// ✨ Key features:
//   - row-major Table: rows are times, columns are points
//   - context cancellation checked between samples
//   - results independent of the worker count (each sample is a pure
//     function of its inputs)
//
// ⚙️ Usage:
//
//	spec := profile.Spec{
//		Node:         heat.Node{Dim: 1, L: 1, Alpha: 1},
//		Boundary:     heat.Dirichlet,
//		Contribution: heat.Initial,
//		Params:       heat.Params{A0: 300},
//		Tolerance:    1e-12,
//		Times:        []float64{0.01, 0.1},
//		Points:       profile.Line(0, 1, 11),
//	}
//	tbl, err := profile.Run(ctx, spec, profile.WithWorkers(4))
//
// Complexity:
//
//	O(|Times|·|Points|·d²·N) term evaluations, divided across workers.
package profile
