package misc_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatseries/misc"
)

var silent = misc.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func closedSinN3(x float64) float64 {
	return math.Pi*math.Pi*x/6 - math.Pi*x*x/4 + x*x*x/12
}

func closedAltSinN3(x float64) float64 {
	return -(math.Pi*math.Pi*x - x*x*x) / 12
}

// TestResult_TenthOfPi: the historical reference points at x = π/10.
func TestResult_TenthOfPi(t *testing.T) {
	e, err := misc.New(misc.SinN3, 0.1*math.Pi, silent)
	require.NoError(t, err)
	assert.InDelta(t, 0.441839, e.Result(1e-20), 1e-4)

	require.NoError(t, e.SetFunction(misc.AltSinN3))
	assert.InDelta(t, -0.255802, e.Result(1e-20), 1e-4)
}

// TestResult_ClosedForms compares against the polynomial closed forms.
func TestResult_ClosedForms(t *testing.T) {
	e, err := misc.New(misc.SinN3, 1, silent)
	require.NoError(t, err)

	assert.InDelta(t, closedSinN3(1), e.Result(1e-12), 1e-6)
	assert.Equal(t, 355, e.Iterations())
	assert.LessOrEqual(t, e.AbsErr(), 1e-12)

	require.NoError(t, e.SetFunction(misc.AltSinN3))
	assert.InDelta(t, closedAltSinN3(1), e.Result(1e-12), 1e-6)

	e.SetX(2)
	assert.Equal(t, 2.0, e.X())
	assert.InDelta(t, closedAltSinN3(2), e.Result(1e-12), 1e-6)
}

// TestResult_Boundary: both series vanish at the ends of [0, π].
func TestResult_Boundary(t *testing.T) {
	for _, fn := range []misc.Function{misc.SinN3, misc.AltSinN3} {
		for _, x := range []float64{0, 1e-5, math.Pi, 0.99995 * math.Pi} {
			e, err := misc.New(fn, x, silent)
			require.NoError(t, err)
			assert.Equal(t, 0.0, e.Result(1e-12), "%v at %g", fn, x)
			assert.Equal(t, 1, e.Iterations())
		}
	}
}

// TestFunction_Names covers parsing and validation of the selector.
func TestFunction_Names(t *testing.T) {
	fn, err := misc.ParseFunction(" AltSinN3")
	require.NoError(t, err)
	assert.Equal(t, misc.AltSinN3, fn)
	assert.Equal(t, "sinn3", misc.SinN3.String())
	assert.Equal(t, "Function(4)", misc.Function(4).String())

	_, err = misc.ParseFunction("cosn2")
	assert.ErrorIs(t, err, misc.ErrUnknownFunction)
	_, err = misc.New(misc.Function(4), 1)
	assert.ErrorIs(t, err, misc.ErrUnknownFunction)

	e, err := misc.New(misc.SinN3, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, e.SetFunction(misc.Function(-1)), misc.ErrUnknownFunction)
	assert.Equal(t, misc.SinN3, e.Function())
}

// TestResult_Truncated: a tiny cap returns the partial sum.
func TestResult_Truncated(t *testing.T) {
	e, err := misc.New(misc.SinN3, 1, silent, misc.WithMaxIterations(5))
	require.NoError(t, err)

	var want float64
	for k := 1.0; k <= 6; k++ {
		want += math.Sin(k) / (k * k * k)
	}
	assert.InDelta(t, want, e.Result(1e-12), 1e-15)
	assert.Equal(t, 6, e.Iterations())
}
