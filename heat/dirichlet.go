package heat

import "math"

// formula returns the n-th term for a node and its parameters.
// Every formula is pure: it reads nd and p and writes nothing.
type formula func(n int, nd *Node, p *Params) float64

type formulaKey struct {
	bc   BoundaryKind
	term ContributionKind
}

// formulas is the (BoundaryKind, ContributionKind) dispatch table.
// Pairs missing here are unsupported.
var formulas = map[formulaKey]formula{
	{Dirichlet, Initial}:  dirichletInitial,
	{Dirichlet, Boundary}: dirichletBoundary,
	{Dirichlet, Source}:   dirichletSource,
}

// lookupFormula resolves the term formula of a pair.
func lookupFormula(bc BoundaryKind, term ContributionKind) (formula, bool) {
	f, ok := formulas[formulaKey{bc, term}]
	return f, ok
}

// signedRoot is the real d-th root of a, keeping its sign: wall values may
// be negative, and math.Pow yields NaN for a negative base in 2D and 3D.
func signedRoot(a, d float64) float64 {
	return math.Copysign(math.Pow(math.Abs(a), 1/d), a)
}

// decay returns sin(λx)·exp(-αλ²t) for λ = k·π/l.
func decay(k float64, x float64, nd *Node) float64 {
	arg := k * math.Pi / nd.L
	return math.Sin(arg*x) * math.Exp(-nd.Alpha*arg*arg*nd.T)
}

// dirichletInitial: uniform initial temperature a0 decaying between
// zero-temperature walls. At t = 0 only n = 0 contributes, a0^(1/d).
func dirichletInitial(n int, nd *Node, p *Params) float64 {
	x := nd.Coord(nd.Axis)
	if nd.OnBoundary(x) {
		return 0
	}
	amp := math.Pow(p.A0, 1/float64(nd.Dim))
	if nd.T == 0 {
		if n == 0 {
			return amp
		}
		return 0
	}
	k := 2*float64(n) + 1

	return amp * (2 / math.Pi) * 2 / k * decay(k, x, nd)
}

// dirichletBoundary: transient part of the response to wall values a1, a2.
// The steady part a1 + (a2-a1)x/l comes from SteadyStateDirichlet.
func dirichletBoundary(n int, nd *Node, p *Params) float64 {
	if p.A1 == 0 && p.A2 == 0 {
		return 0
	}
	x := nd.Coord(nd.Axis)
	dim := float64(nd.Dim)
	if nd.T == 0 {
		// only the wall values survive at t = 0
		switch {
		case n != 0:
			return 0
		case x <= edgeLow:
			return signedRoot(p.A1, dim)
		case x >= edgeHigh*nd.L:
			return signedRoot(p.A2, dim)
		}
		return 0
	}
	scale := 2 / (math.Pi * math.Pow(dim, 1/dim))
	if nd.Axis != nd.BoundaryAxis {
		k := 2*float64(n) + 1
		return scale * 2 / k * decay(k, x, nd)
	}
	m := float64(n) + 1
	sign := 1.0 // (-1)^(n+1)
	if n%2 == 0 {
		sign = -1.0
	}

	return scale * 1 / m * (sign*p.A2 - p.A1) * decay(m, x, nd)
}

// dirichletSource: transient part of a uniform source a0. X is the source
// axis and carries the cubic damping; Y and Z factors decay as 1/(2n+1).
func dirichletSource(n int, nd *Node, p *Params) float64 {
	x := nd.Coord(nd.Axis)
	if nd.OnBoundary(x) {
		return 0
	}
	dim := float64(nd.Dim)
	c := p.A0 * nd.L * nd.L / (dim * nd.Alpha * math.Pow(math.Pi, 2+dim))
	amp := 2 * math.Pow(c, 1/dim)
	if nd.T == 0 {
		if n == 0 {
			return amp
		}
		return 0
	}
	k := 2*float64(n) + 1
	if nd.Axis == X {
		return amp * 2 / (k * k * k) * decay(k, x, nd)
	}

	return amp * 2 / k * decay(k, x, nd)
}

// steadyDirichlet is the t → ∞ limit of a Dirichlet contribution.
func steadyDirichlet(term ContributionKind, nd *Node, p *Params) float64 {
	dim := float64(nd.Dim)
	switch term {
	case Boundary:
		c := nd.Coord(nd.BoundaryAxis)
		return 1 / dim * (p.A1 + (p.A2-p.A1)*c/nd.L)
	case Source:
		for _, a := range Axes[:nd.Dim] {
			if nd.OnBoundary(nd.Coord(a)) {
				return 0
			}
		}
		l2 := nd.L * nd.L
		switch nd.Dim {
		case 1:
			return p.A0 * l2 / (6 * nd.Alpha)
		case 2:
			return p.A0 * l2 / (12 * nd.Alpha)
		default:
			return 2 * p.A0 * l2 / (27 * nd.Alpha)
		}
	}
	// Initial decays to zero.
	return 0
}
