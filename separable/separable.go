// Package separable composes one-dimensional heat series into 2D and 3D
// solutions by separation of variables.
//
// A heat.Generator only ever sums along one axis. For a square or a cube
// the solution is assembled from per-axis sums S(a) at the generator's
// current (x, y, z, t):
//
//	Initial:  Π_a S(a)
//	Source:   steady - Π_a S(a)
//	Boundary: Σ_b [ steady(b) + Π_a S(a; b) ]   (b = wall-carrying axis)
//
// In 1D every formula reduces to the plain 1D evaluation (steady + S for
// boundaries).
package separable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/heatseries/heat"
)

// Method picks the summation discipline used for every axis.
type Method int

const (
	// Forward uses plain truncated summation.
	Forward Method = iota
	// Kahan uses compensated summation.
	Kahan
)

func (m Method) String() string {
	switch m {
	case Forward:
		return "forward"
	case Kahan:
		return "kahan"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ErrUnknownMethod indicates a Method outside {Forward, Kahan}.
var ErrUnknownMethod = errors.New("separable: unknown summation method")

// ParseMethod maps "forward" or "kahan" (any case) to a Method. An empty
// name selects Forward.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "":
		return Forward, nil
	case "kahan":
		return Kahan, nil
	}
	return 0, fmt.Errorf("separable: %q: %w", s, ErrUnknownMethod)
}

// Evaluate returns the full contribution of g at its current position and
// time. The generator's Axis and BoundaryAxis are restored before returning.
//
// Complexity: O(d²·N) term evaluations for boundaries, O(d·N) otherwise.
func Evaluate(g *heat.Generator, tol float64, m Method) (float64, error) {
	if m != Forward && m != Kahan {
		return 0, fmt.Errorf("Evaluate: %v: %w", m, ErrUnknownMethod)
	}

	nd := g.Node()
	defer func() {
		// both axes were valid on entry
		_ = g.SetAxis(nd.Axis)
		_ = g.SetBoundaryAxis(nd.BoundaryAxis)
	}()

	axes := heat.Axes[:nd.Dim]
	product := func() (float64, error) {
		p := 1.0
		for _, a := range axes {
			if err := g.SetAxis(a); err != nil {
				return 0, err
			}
			p *= sum(g, tol, m)
		}
		return p, nil
	}

	switch g.ContributionKind() {
	case heat.Initial:
		return product()
	case heat.Source:
		p, err := product()
		if err != nil {
			return 0, err
		}
		return g.SteadyStateDirichlet() - p, nil
	case heat.Boundary:
		var total float64
		for _, b := range axes {
			if err := g.SetBoundaryAxis(b); err != nil {
				return 0, err
			}
			p, err := product()
			if err != nil {
				return 0, err
			}
			total += g.SteadyStateDirichlet() + p
		}
		return total, nil
	}

	return 0, fmt.Errorf("Evaluate: %v: %w", g.ContributionKind(), heat.ErrUnknownKind)
}

func sum(g *heat.Generator, tol float64, m Method) float64 {
	if m == Kahan {
		return g.SumKahan(tol)
	}
	return g.SumForward(tol)
}
