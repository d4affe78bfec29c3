// Package misc sums two trigonometric series with known closed forms. They
// exercise the series engine away from the heat equation:
//
//	SinN3(x)    = Σ_{k≥1} sin(kx)/k³          = π²x/6 - πx²/4 + x³/12
//	AltSinN3(x) = Σ_{k≥1} (-1)^k sin(kx)/k³   = -(π²x - x³)/12
//
// for 0 < x < π. Both are reported as exactly 0 on the boundary of
// [0, π], using the same 1e-4 / 0.9999 thresholds as the heat package.
package misc

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/heatseries/series"
)

// Function selects the series.
type Function int

const (
	// SinN3 is Σ sin((n+1)x)/(n+1)³.
	SinN3 Function = iota
	// AltSinN3 is Σ (-1)^(n+1) sin((n+1)x)/(n+1)³.
	AltSinN3
)

var functionNames = map[Function]string{SinN3: "sinn3", AltSinN3: "altsinn3"}

func (f Function) String() string {
	if s, ok := functionNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Function(%d)", int(f))
}

// ErrUnknownFunction indicates a name or value outside {SinN3, AltSinN3}.
var ErrUnknownFunction = errors.New("misc: unknown function")

// ParseFunction maps "sinn3" or "altsinn3" (any case) to a Function.
func ParseFunction(s string) (Function, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for f, name := range functionNames {
		if name == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("misc: %q: %w", s, ErrUnknownFunction)
}

// Option customizes an Evaluator.
type Option = series.Option

// WithLogger and WithMaxIterations are forwarded to the underlying summator.
var (
	WithLogger        = series.WithLogger
	WithMaxIterations = series.WithMaxIterations
)

// Evaluator sums one Function at one x. Not safe for concurrent use.
type Evaluator struct {
	fn  Function
	x   float64
	sum *series.Summator
}

// New returns an Evaluator for fn at x.
func New(fn Function, x float64, opts ...Option) (*Evaluator, error) {
	if _, ok := functionNames[fn]; !ok {
		return nil, fmt.Errorf("misc.New: %v: %w", fn, ErrUnknownFunction)
	}
	e := &Evaluator{fn: fn, x: x}
	e.sum = series.New(e.term, opts...)

	return e, nil
}

func (e *Evaluator) term(n int) float64 {
	if e.x <= 1e-4 || e.x >= 0.9999*math.Pi {
		return 0
	}
	k := float64(n + 1)
	v := math.Sin(k*e.x) / (k * k * k)
	if e.fn == AltSinN3 && n%2 == 0 {
		v = -v
	}

	return v
}

// SetX moves the evaluation point.
func (e *Evaluator) SetX(x float64) { e.x = x }

// SetFunction switches the series.
func (e *Evaluator) SetFunction(fn Function) error {
	if _, ok := functionNames[fn]; !ok {
		return fmt.Errorf("misc.SetFunction: %v: %w", fn, ErrUnknownFunction)
	}
	e.fn = fn

	return nil
}

// X returns the evaluation point.
func (e *Evaluator) X() float64 { return e.x }

// Function returns the selected series.
func (e *Evaluator) Function() Function { return e.fn }

// Result is the forward sum at tolerance tol (< 1). A truncated sum is
// logged and returned as is.
func (e *Evaluator) Result(tol float64) float64 { return e.sum.Forward(tol) }

// Iterations returns the term count of the last Result.
func (e *Evaluator) Iterations() int { return e.sum.LastIterations() }

// AbsErr returns |last term| of the last Result.
func (e *Evaluator) AbsErr() float64 { return e.sum.LastAbsoluteError() }
