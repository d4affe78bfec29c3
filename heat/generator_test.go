package heat_test

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatseries/heat"
	"github.com/katalvlaran/heatseries/series"
)

var discard = heat.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// TestNew_Getters checks that construction keeps every field.
func TestNew_Getters(t *testing.T) {
	nd := heat.Node{Dim: 1, L: 1, Alpha: 1.3e-9}
	p := heat.Params{A0: 300}
	g, err := heat.New(nd, heat.Dirichlet, heat.Initial, p, discard)
	require.NoError(t, err)

	assert.Equal(t, nd, g.Node())
	assert.InDelta(t, 1.3e-9, g.Node().Alpha, 1e-10)
	assert.Equal(t, heat.Dirichlet, g.BoundaryKind())
	assert.Equal(t, heat.Initial, g.ContributionKind())
	assert.Equal(t, p, g.Params())
}

// TestNew_UnsupportedBoundary ensures only Dirichlet pairs are accepted.
func TestNew_UnsupportedBoundary(t *testing.T) {
	nd := heat.Node{Dim: 1, L: 1, Alpha: 1}
	for _, bc := range []heat.BoundaryKind{heat.Neumann, heat.Robin, heat.MixedFirst, heat.MixedSecond} {
		for _, term := range []heat.ContributionKind{heat.Initial, heat.Boundary, heat.Source} {
			_, err := heat.New(nd, bc, term, heat.Params{A0: 1}, discard)
			assert.ErrorIs(t, err, heat.ErrUnsupportedBoundary, "%v/%v", bc, term)
		}
	}
}

// TestNew_Validation walks through every node invariant.
func TestNew_Validation(t *testing.T) {
	base := heat.Node{Dim: 2, L: 1, Alpha: 1}
	cases := []struct {
		name   string
		mutate func(*heat.Node)
		want   error
	}{
		{"dim zero", func(n *heat.Node) { n.Dim = 0 }, heat.ErrInvalidDimension},
		{"dim four", func(n *heat.Node) { n.Dim = 4 }, heat.ErrInvalidDimension},
		{"zero length", func(n *heat.Node) { n.L = 0 }, heat.ErrInvalidLength},
		{"NaN length", func(n *heat.Node) { n.L = math.NaN() }, heat.ErrInvalidLength},
		{"negative alpha", func(n *heat.Node) { n.Alpha = -1 }, heat.ErrInvalidDiffusivity},
		{"negative time", func(n *heat.Node) { n.T = -0.1 }, heat.ErrNegativeTime},
		{"infinite time", func(n *heat.Node) { n.T = math.Inf(1) }, heat.ErrNegativeTime},
		{"unknown axis", func(n *heat.Node) { n.Axis = heat.Axis(7) }, heat.ErrUnknownAxis},
		{"z in 2D", func(n *heat.Node) { n.BoundaryAxis = heat.Z }, heat.ErrAxisOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nd := base
			tc.mutate(&nd)
			_, err := heat.New(nd, heat.Dirichlet, heat.Initial, heat.Params{A0: 1}, discard)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := heat.New(base, heat.Dirichlet, heat.Source, heat.Params{A0: -1}, discard)
	assert.ErrorIs(t, err, heat.ErrNegativeMagnitude, "square root of a negative source")
}

// TestSetters_Validation rejects axes beyond the dimension and negative times.
func TestSetters_Validation(t *testing.T) {
	g, err := heat.New(heat.Node{Dim: 2, L: 1, Alpha: 1}, heat.Dirichlet, heat.Boundary, heat.Params{A1: 1}, discard)
	require.NoError(t, err)

	require.NoError(t, g.SetAxis(heat.Y))
	require.NoError(t, g.SetBoundaryAxis(heat.Y))
	assert.ErrorIs(t, g.SetAxis(heat.Z), heat.ErrAxisOutOfRange)
	assert.ErrorIs(t, g.SetBoundaryAxis(heat.Z), heat.ErrAxisOutOfRange)
	assert.ErrorIs(t, g.SetCoord(heat.Axis(-1), 0.5), heat.ErrUnknownAxis)
	assert.ErrorIs(t, g.SetTime(-1), heat.ErrNegativeTime)

	require.NoError(t, g.SetCoord(heat.Y, 0.25))
	require.NoError(t, g.SetTime(0.5))
	nd := g.Node()
	assert.Equal(t, heat.Y, nd.Axis)
	assert.Equal(t, heat.Y, nd.BoundaryAxis)
	assert.Equal(t, 0.25, nd.Y)
	assert.Equal(t, 0.5, nd.T)
}

// TestInitialAtTimeZero: the series collapses to its first term.
func TestInitialAtTimeZero(t *testing.T) {
	g, err := heat.New(heat.Node{Dim: 1, L: 1, Alpha: 1, X: 0.3}, heat.Dirichlet, heat.Initial, heat.Params{A0: 300}, discard)
	require.NoError(t, err)

	assert.Equal(t, 300.0, g.Term(0))
	assert.Equal(t, 0.0, g.Term(1))
	assert.Equal(t, 300.0, g.SumForward(1e-20))
	assert.Equal(t, 2, g.LastIterations())

	g.SetX(0)
	assert.Equal(t, 0.0, g.SumForward(1e-20), "walls stay at zero")
}

// TestBoundaryAtTimeZero: wall values at the walls, zero inside.
func TestBoundaryAtTimeZero(t *testing.T) {
	g, err := heat.New(heat.Node{Dim: 1, L: 2, Alpha: 1}, heat.Dirichlet, heat.Boundary, heat.Params{A1: 10, A2: 20}, discard)
	require.NoError(t, err)

	assert.Equal(t, 10.0, g.SumForward(1e-20))
	g.SetX(2)
	assert.Equal(t, 20.0, g.SumForward(1e-20))
	g.SetX(1)
	assert.Equal(t, 0.0, g.SumForward(1e-20))
}

// TestBoundaryNegativeWalls: sub-zero walls keep their sign under the d-th root.
func TestBoundaryNegativeWalls(t *testing.T) {
	g, err := heat.New(heat.Node{Dim: 2, L: 1, Alpha: 1}, heat.Dirichlet, heat.Boundary, heat.Params{A1: -10, A2: 5}, discard)
	require.NoError(t, err)

	assert.InDelta(t, -math.Sqrt(10), g.Term(0), 1e-12)
	assert.InDelta(t, -math.Sqrt(10), g.SumForward(1e-20), 1e-12)
	assert.InDelta(t, -math.Sqrt(10), g.SumKahan(1e-20), 1e-12)
	g.SetX(1)
	assert.InDelta(t, math.Sqrt(5), g.SumForward(1e-20), 1e-12)

	g3, err := heat.New(heat.Node{Dim: 3, L: 1, Alpha: 1}, heat.Dirichlet, heat.Boundary, heat.Params{A1: -8, A2: 27}, discard)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, g3.Term(0), 1e-12)

	require.NoError(t, g.SetTime(0.01))
	for _, x := range []float64{0, 0.3, 0.5, 1} {
		g.SetX(x)
		for _, a := range []heat.Axis{heat.X, heat.Y} {
			require.NoError(t, g.SetAxis(a))
			v := g.SumForward(1e-12)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "x=%g axis=%v", x, a)
		}
	}
}

// TestBoundaryZeroWalls: no wall values, no transient.
func TestBoundaryZeroWalls(t *testing.T) {
	g, err := heat.New(heat.Node{Dim: 1, L: 1, Alpha: 1, X: 0.5, T: 0.1}, heat.Dirichlet, heat.Boundary, heat.Params{}, discard)
	require.NoError(t, err)

	for n := 0; n < 5; n++ {
		assert.Equal(t, 0.0, g.Term(n))
	}
}

// TestSumBackward_AgreesWithForward cross-checks a fixed window against truncation.
func TestSumBackward_AgreesWithForward(t *testing.T) {
	g, err := heat.New(heat.Node{Dim: 1, L: 1, Alpha: 1, X: 0.5, T: 0.01}, heat.Dirichlet, heat.Initial, heat.Params{A0: 300}, discard)
	require.NoError(t, err)

	fwd := g.SumForward(1e-20)
	bwd := g.SumBackward(60)
	assert.InDelta(t, fwd, bwd, 1e-9)
	assert.Equal(t, 61, g.LastIterations())
}

// TestTruncation_StampsTime checks the recoverable truncation path.
func TestTruncation_StampsTime(t *testing.T) {
	nd := heat.Node{Dim: 1, L: 1, Alpha: 1, X: 0.5, T: 0.001}
	g, err := heat.New(nd, heat.Dirichlet, heat.Initial, heat.Params{A0: 300}, discard, heat.WithMaxIterations(2))
	require.NoError(t, err)

	partial, err := g.TrySumForward(1e-20)
	require.ErrorIs(t, err, series.ErrMaxIterationsReached)

	var mi *series.MaxIterationsError
	require.True(t, errors.As(err, &mi))
	assert.Equal(t, 0.001, mi.Time)
	assert.Equal(t, 3, mi.Iterations)
	assert.Equal(t, partial, mi.Output)

	assert.Equal(t, partial, g.SumForward(1e-20), "best-effort sum substitutes the partial output")
	assert.Equal(t, 3, g.LastIterations())
}

// TestKahan_DegenerateTolerance: SumKahan never panics, TrySumKahan reports.
func TestKahan_DegenerateTolerance(t *testing.T) {
	g, err := heat.New(heat.Node{Dim: 1, L: 1, Alpha: 1, X: 0.5, T: 0.01}, heat.Dirichlet, heat.Initial, heat.Params{A0: 300}, discard)
	require.NoError(t, err)

	_, err = g.TrySumKahan(1)
	assert.ErrorIs(t, err, series.ErrToleranceTooLarge)
	assert.Equal(t, 0.0, g.SumKahan(1))
	assert.Panics(t, func() { g.SumForward(1) })
}

// TestIdempotence: unchanged inputs give bit-identical sums.
func TestIdempotence(t *testing.T) {
	g, err := heat.New(heat.Node{Dim: 1, L: 1, Alpha: 1, X: 0.3, T: 0.01}, heat.Dirichlet, heat.Boundary, heat.Params{A1: 434.6, A2: 325.8}, discard)
	require.NoError(t, err)

	a, b := g.SumForward(1e-20), g.SumForward(1e-20)
	assert.Equal(t, a, b)
	c, d := g.SumKahan(1e-20), g.SumKahan(1e-20)
	assert.Equal(t, c, d)
	assert.InDelta(t, a, c, 1e-6)
}

// TestParse covers the name mappings used by configuration files.
func TestParse(t *testing.T) {
	bc, err := heat.ParseBoundaryKind(" Dirichlet ")
	require.NoError(t, err)
	assert.Equal(t, heat.Dirichlet, bc)
	bc, err = heat.ParseBoundaryKind("mixedII")
	require.NoError(t, err)
	assert.Equal(t, heat.MixedSecond, bc)
	_, err = heat.ParseBoundaryKind("cauchy")
	assert.ErrorIs(t, err, heat.ErrUnknownKind)

	term, err := heat.ParseContributionKind("SOURCE")
	require.NoError(t, err)
	assert.Equal(t, heat.Source, term)
	_, err = heat.ParseContributionKind("sink")
	assert.ErrorIs(t, err, heat.ErrUnknownKind)

	ax, err := heat.ParseAxis("Z")
	require.NoError(t, err)
	assert.Equal(t, heat.Z, ax)
	_, err = heat.ParseAxis("w")
	assert.ErrorIs(t, err, heat.ErrUnknownAxis)

	assert.Equal(t, "mixed1", heat.MixedFirst.String())
	assert.Equal(t, "boundary", heat.Boundary.String())
	assert.Equal(t, "y", heat.Y.String())
	assert.Equal(t, "BoundaryKind(9)", heat.BoundaryKind(9).String())
}
