package heat

import (
	"fmt"
	"math"
)

// Boundary detection thresholds: a coordinate c lies on the boundary when
// c ≤ edgeLow or c ≥ edgeHigh·l.
const (
	edgeLow  = 1e-4
	edgeHigh = 0.9999
)

// Node is the geometry and physics context of one (position, time) sample.
//
// Fields:
//   - Dim         : 1 (line), 2 (square) or 3 (cube).
//   - X, Y, Z     : coordinates in [0, L].
//   - T           : evaluation time, ≥ 0.
//   - L           : side length, > 0.
//   - Alpha       : thermal diffusivity, > 0.
//   - Axis        : axis whose coordinate feeds the term.
//   - BoundaryAxis: axis carrying the boundary values (Boundary terms).
type Node struct {
	Dim          int
	X, Y, Z      float64
	T            float64
	L            float64
	Alpha        float64
	Axis         Axis
	BoundaryAxis Axis
}

// Coord returns the coordinate of n along a.
func (n Node) Coord(a Axis) float64 {
	switch a {
	case Y:
		return n.Y
	case Z:
		return n.Z
	}
	return n.X
}

// setCoord writes v into the coordinate along a.
func (n *Node) setCoord(a Axis, v float64) {
	switch a {
	case X:
		n.X = v
	case Y:
		n.Y = v
	case Z:
		n.Z = v
	}
}

// OnBoundary reports whether c lies on the boundary of [0, L].
func (n Node) OnBoundary(c float64) bool {
	return c <= edgeLow || c >= edgeHigh*n.L
}

// Validate checks the node invariants.
// Stage 1: dimension. Stage 2: physical constants. Stage 3: axes.
func (n Node) Validate() error {
	if n.Dim < 1 || n.Dim > 3 {
		return fmt.Errorf("Node.Validate: dim=%d: %w", n.Dim, ErrInvalidDimension)
	}
	if !(n.L > 0) || math.IsInf(n.L, 0) {
		return fmt.Errorf("Node.Validate: l=%g: %w", n.L, ErrInvalidLength)
	}
	if !(n.Alpha > 0) || math.IsInf(n.Alpha, 0) {
		return fmt.Errorf("Node.Validate: alpha=%g: %w", n.Alpha, ErrInvalidDiffusivity)
	}
	if !(n.T >= 0) || math.IsInf(n.T, 0) {
		return fmt.Errorf("Node.Validate: t=%g: %w", n.T, ErrNegativeTime)
	}
	if err := n.checkAxis(n.Axis); err != nil {
		return fmt.Errorf("Node.Validate: axis: %w", err)
	}
	if err := n.checkAxis(n.BoundaryAxis); err != nil {
		return fmt.Errorf("Node.Validate: boundary axis: %w", err)
	}

	return nil
}

func (n Node) checkAxis(a Axis) error {
	if !a.valid() {
		return ErrUnknownAxis
	}
	if int(a) >= n.Dim {
		return fmt.Errorf("%v in %dD: %w", a, n.Dim, ErrAxisOutOfRange)
	}
	return nil
}
