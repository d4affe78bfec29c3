// Package heat builds the terms of closed-form series solutions of the heat
// equation u_t = α ∇²u on a line [0,l], a square [0,l]² or a cube [0,l]³.
//
// A solution is split into three contributions, each a separate series:
//
//	Initial : decay of a uniform initial temperature a0
//	Boundary: response to fixed boundary values a1 (at 0) and a2 (at l)
//	Source  : response to a uniform volumetric source a0
//
// A Generator is strictly one-dimensional: it produces the n-th term along
// its active Axis for one (BoundaryKind, ContributionKind) pair, plus the
// t → ∞ closed form (SteadyStateDirichlet). Multi-dimensional values are the
// product of per-axis sums (separation of variables); package separable does
// that composition.
//
// Dirichlet terms, with x the active coordinate, d the dimension and
// λ_k = kπ/l:
//
//	Initial:  a0^(1/d)·(4/π)/(2n+1)·sin(λ_{2n+1}x)·exp(-αλ_{2n+1}²t)
//	Boundary: 2/(π·d^(1/d))·((-1)^(n+1)a2 - a1)/(n+1)·sin(λ_{n+1}x)·exp(-αλ_{n+1}²t)
//	          (on the boundary axis; 2/(π·d^(1/d))·2/(2n+1)·sin·exp elsewhere)
//	Source:   2c^(1/d)·2/(2n+1)³·sin(λ_{2n+1}x)·exp(-αλ_{2n+1}²t),
//	          c = a0·l²/(d·α·π^(2+d)) (cubic damping on X only)
//
// Points within 1e-4 of x = 0, or beyond 0.9999·l, are treated as lying on
// the boundary.
//
// Neumann, Robin and the mixed conditions have no validated derivation yet;
// New rejects them with ErrUnsupportedBoundary.
//
// A Generator is mutated in place between evaluations (SetX, SetTime,
// SetAxis, ...) and is not safe for concurrent use. Give every goroutine its
// own Generator.
package heat
