// Package heatseries evaluates analytical solutions of the heat equation
// on a line, a square or a cube as truncated infinite series.
//
// 🚀 What is heatseries?
//
//	A small numerical toolkit built in layers:
//		• series/     forward, Kahan and backward sums of a term callback,
//		              with iteration caps and diagnostics
//		• heat/       Dirichlet term generators for the initial, boundary and
//		              source contributions, plus their steady states
//		• separable/  2D and 3D solutions composed from per-axis 1D sums
//		• profile/    concurrent sampling over (time, point) grids
//		• misc/       trigonometric validation series with closed forms
//
// ✨ Key features:
//
//   - Truncation is recoverable: partial sums travel inside typed errors
//   - Structured logging through log/slog, injected with options
//   - One generator per goroutine, no shared mutable state
//   - YAML run files and a cobra CLI under cmd/heatseries
//
// Quick example (a rod at 300 whose ends are held at 0):
//
//	g, _ := heat.New(heat.Node{Dim: 1, X: 0.5, T: 0.01, L: 1, Alpha: 1},
//		heat.Dirichlet, heat.Initial, heat.Params{A0: 300})
//	u := g.SumForward(1e-12) // ≈ 299.7558
//
//	go install github.com/katalvlaran/heatseries/cmd/heatseries@latest
package heatseries

// Version is the release of the module and of the heatseries CLI.
const Version = "0.3.0"
