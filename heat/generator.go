package heat

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/heatseries/series"
)

// Generator produces the terms of one contribution along one axis and sums
// them. It exclusively owns its Node and Params.
type Generator struct {
	node   Node
	bc     BoundaryKind
	term   ContributionKind
	params Params
	f      formula
	sum    *series.Summator
}

// New builds a Generator for the (bc, term) pair.
//
// Stage 1 (Validate): node invariants, a0 ≥ 0 when a d-th root is taken.
// Stage 2 (Resolve):  pick the formula; unsupported pairs fail with
// ErrUnsupportedBoundary.
// Stage 3 (Bind):     attach a series.Summator to Term.
//
// Errors: ErrInvalidDimension, ErrInvalidLength, ErrInvalidDiffusivity,
// ErrNegativeTime, ErrUnknownAxis, ErrAxisOutOfRange, ErrNegativeMagnitude,
// ErrUnsupportedBoundary.
func New(nd Node, bc BoundaryKind, term ContributionKind, p Params, opts ...Option) (*Generator, error) {
	// Stage 1
	if err := nd.Validate(); err != nil {
		return nil, fmt.Errorf("heat.New: %w", err)
	}
	if nd.Dim > 1 && term != Boundary && p.A0 < 0 {
		return nil, fmt.Errorf("heat.New: a0=%g: %w", p.A0, ErrNegativeMagnitude)
	}

	// Stage 2
	f, ok := lookupFormula(bc, term)
	if !ok {
		return nil, fmt.Errorf("heat.New: %v/%v: %w", bc, term, ErrUnsupportedBoundary)
	}

	// Stage 3
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Generator{node: nd, bc: bc, term: term, params: p, f: f}
	g.sum = series.New(g.Term, series.WithLogger(cfg.logger), series.WithMaxIterations(cfg.maxIter))

	return g, nil
}

// Term returns the n-th term of the active series (n ≥ 0).
func (g *Generator) Term(n int) float64 {
	return g.f(n, &g.node, &g.params)
}

// SteadyStateDirichlet returns the t → ∞ closed form of the contribution:
// 0 for Initial, the linear wall profile (scaled by 1/d) along the
// boundary axis for Boundary, and a dimension-dependent constant away from
// the walls for Source.
func (g *Generator) SteadyStateDirichlet() float64 {
	return steadyDirichlet(g.term, &g.node, &g.params)
}

// SumForward returns the forward truncated sum of Term. A cap overrun is
// logged with the evaluation time and its partial sum returned.
// Panics if tol ≥ 1.
func (g *Generator) SumForward(tol float64) float64 {
	out, err := g.sum.SumForward(tol)
	if err != nil {
		return g.sum.Recover(err, g.node.T)
	}
	return out
}

// TrySumForward is SumForward without the recovery policy: the partial sum
// comes back together with a *series.MaxIterationsError stamped with t.
func (g *Generator) TrySumForward(tol float64) (float64, error) {
	out, err := g.sum.SumForward(tol)
	return out, g.stamp(err)
}

// SumKahan returns the Kahan-compensated sum of Term. A degenerate tol is
// logged and yields 0.
func (g *Generator) SumKahan(tol float64) float64 {
	out, err := g.sum.SumKahan(tol)
	if err != nil {
		return g.sum.Recover(err, g.node.T)
	}
	return out
}

// TrySumKahan is SumKahan without the recovery policy.
func (g *Generator) TrySumKahan(tol float64) (float64, error) {
	out, err := g.sum.SumKahan(tol)
	return out, g.stamp(err)
}

// SumBackward sums Term from nMax down to 0.
func (g *Generator) SumBackward(nMax int) float64 {
	return g.sum.SumBackward(nMax)
}

func (g *Generator) stamp(err error) error {
	var mi *series.MaxIterationsError
	if errors.As(err, &mi) {
		mi.Time = g.node.T
	}
	return err
}

// LastAbsoluteError returns the last term magnitude of the latest sum.
func (g *Generator) LastAbsoluteError() float64 { return g.sum.LastAbsoluteError() }

// LastIterations returns the term count of the latest sum.
func (g *Generator) LastIterations() int { return g.sum.LastIterations() }

// Node returns a copy of the current node.
func (g *Generator) Node() Node { return g.node }

// BoundaryKind returns the boundary condition.
func (g *Generator) BoundaryKind() BoundaryKind { return g.bc }

// ContributionKind returns the contribution.
func (g *Generator) ContributionKind() ContributionKind { return g.term }

// Params returns the physical constants.
func (g *Generator) Params() Params { return g.params }

// SetTime moves the evaluation to time t ≥ 0.
func (g *Generator) SetTime(t float64) error {
	if !(t >= 0) || math.IsInf(t, 0) {
		return fmt.Errorf("SetTime(%g): %w", t, ErrNegativeTime)
	}
	g.node.T = t
	return nil
}

// SetX moves the x coordinate.
func (g *Generator) SetX(x float64) { g.node.X = x }

// SetY moves the y coordinate.
func (g *Generator) SetY(y float64) { g.node.Y = y }

// SetZ moves the z coordinate.
func (g *Generator) SetZ(z float64) { g.node.Z = z }

// SetCoord moves the coordinate along a.
func (g *Generator) SetCoord(a Axis, v float64) error {
	if err := g.node.checkAxis(a); err != nil {
		return fmt.Errorf("SetCoord: %w", err)
	}
	g.node.setCoord(a, v)
	return nil
}

// SetAxis selects the axis whose coordinate feeds Term.
func (g *Generator) SetAxis(a Axis) error {
	if err := g.node.checkAxis(a); err != nil {
		return fmt.Errorf("SetAxis: %w", err)
	}
	g.node.Axis = a
	return nil
}

// SetBoundaryAxis selects the axis that carries the wall values.
func (g *Generator) SetBoundaryAxis(a Axis) error {
	if err := g.node.checkAxis(a); err != nil {
		return fmt.Errorf("SetBoundaryAxis: %w", err)
	}
	g.node.BoundaryAxis = a
	return nil
}
