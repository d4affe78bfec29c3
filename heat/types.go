// SPDX-License-Identifier: MIT

package heat

import (
	"fmt"
	"strings"
)

// BoundaryKind selects the boundary condition on both ends of every axis.
type BoundaryKind int

const (
	// Dirichlet fixes the temperature on the boundary.
	Dirichlet BoundaryKind = iota
	// Neumann fixes the heat flux on the boundary.
	Neumann
	// Robin imposes a convective (linear) condition with coefficients k1, k2.
	Robin
	// MixedFirst is Dirichlet at x = 0 and Neumann at x = l.
	MixedFirst
	// MixedSecond is Neumann at x = 0 and Dirichlet at x = l.
	MixedSecond
)

var boundaryNames = [...]string{"dirichlet", "neumann", "robin", "mixed1", "mixed2"}

func (k BoundaryKind) String() string {
	if k < 0 || int(k) >= len(boundaryNames) {
		return fmt.Sprintf("BoundaryKind(%d)", int(k))
	}
	return boundaryNames[k]
}

// ParseBoundaryKind maps a case-insensitive name to a BoundaryKind.
// "mixedi"/"mixedii" are accepted as aliases of "mixed1"/"mixed2".
func ParseBoundaryKind(s string) (BoundaryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dirichlet":
		return Dirichlet, nil
	case "neumann":
		return Neumann, nil
	case "robin":
		return Robin, nil
	case "mixed1", "mixedi":
		return MixedFirst, nil
	case "mixed2", "mixedii":
		return MixedSecond, nil
	}
	return 0, fmt.Errorf("heat: boundary %q: %w", s, ErrUnknownKind)
}

// ContributionKind selects which part of the solution a Generator produces.
type ContributionKind int

const (
	// Initial is the contribution of the initial temperature.
	Initial ContributionKind = iota
	// Boundary is the contribution of the boundary values.
	Boundary
	// Source is the contribution of a uniform volumetric source.
	Source
)

var contributionNames = [...]string{"initial", "boundary", "source"}

func (k ContributionKind) String() string {
	if k < 0 || int(k) >= len(contributionNames) {
		return fmt.Sprintf("ContributionKind(%d)", int(k))
	}
	return contributionNames[k]
}

// ParseContributionKind maps a case-insensitive name to a ContributionKind.
func ParseContributionKind(s string) (ContributionKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range contributionNames {
		if n == name {
			return ContributionKind(i), nil
		}
	}
	return 0, fmt.Errorf("heat: contribution %q: %w", s, ErrUnknownKind)
}

// Axis names a spatial direction.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Axes lists every axis in order.
var Axes = [...]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis maps "x", "y" or "z" (any case) to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return 0, fmt.Errorf("heat: axis %q: %w", s, ErrUnknownAxis)
}

func (a Axis) valid() bool { return a >= X && a <= Z }

// Params holds the physical constants of a term.
//
// Fields:
//   - A0    : initial temperature (Initial) or source magnitude (Source).
//   - A1, A2: boundary values at x = 0 and x = l.
//   - K1, K2: Robin coefficients at x = 0 and x = l (unused by Dirichlet).
type Params struct {
	A0, A1, A2 float64
	K1, K2     float64
}
