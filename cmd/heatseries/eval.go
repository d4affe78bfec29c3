package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatseries/heat"
	"github.com/katalvlaran/heatseries/separable"
	"github.com/katalvlaran/heatseries/series"
)

type evalFlags struct {
	boundary     string
	contribution string
	method       string
	node         heat.Node
	params       heat.Params
	tol          float64
	maxIter      int
}

func newEvalCmd(a *app) *cobra.Command {
	var f evalFlags

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate one contribution at one point and time",
		Long: `Evaluates the initial, boundary or source contribution at (x, y, z, t).
Boundary contributions include their steady state, source contributions are
reported as steady state minus transient.`,
		Example: `  heatseries eval --contribution initial --a0 300 --x 0.5 --t 0.01`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.boundary, "boundary", "dirichlet", "Boundary condition")
	fl.StringVar(&f.contribution, "contribution", "initial", "Contribution: initial, boundary or source")
	fl.StringVar(&f.method, "method", "forward", "Summation: forward or kahan")
	fl.IntVar(&f.node.Dim, "dim", 1, "Dimension: 1, 2 or 3")
	fl.Float64Var(&f.node.L, "length", 1, "Side length")
	fl.Float64Var(&f.node.Alpha, "alpha", 1, "Thermal diffusivity")
	fl.Float64Var(&f.node.X, "x", 0, "x coordinate")
	fl.Float64Var(&f.node.Y, "y", 0, "y coordinate")
	fl.Float64Var(&f.node.Z, "z", 0, "z coordinate")
	fl.Float64Var(&f.node.T, "t", 0, "Time")
	fl.Float64Var(&f.params.A0, "a0", 0, "Initial temperature or source magnitude")
	fl.Float64Var(&f.params.A1, "a1", 0, "Wall value at 0")
	fl.Float64Var(&f.params.A2, "a2", 0, "Wall value at l")
	fl.Float64Var(&f.params.K1, "k1", 0, "Robin coefficient at 0")
	fl.Float64Var(&f.params.K2, "k2", 0, "Robin coefficient at l")
	fl.Float64Var(&f.tol, "tol", 1e-12, "Stopping tolerance, in (0, 1)")
	fl.IntVar(&f.maxIter, "max-iterations", series.DefaultMaxIterations, "Forward summation cap")

	return cmd
}

func runEval(cmd *cobra.Command, a *app, f evalFlags) error {
	if !(f.tol > 0 && f.tol < 1) {
		return fmt.Errorf("eval: --tol %g: must be in (0, 1)", f.tol)
	}
	if f.maxIter <= 0 {
		return fmt.Errorf("eval: --max-iterations %d: must be > 0", f.maxIter)
	}
	bc, err := heat.ParseBoundaryKind(f.boundary)
	if err != nil {
		return err
	}
	term, err := heat.ParseContributionKind(f.contribution)
	if err != nil {
		return err
	}
	method, err := separable.ParseMethod(f.method)
	if err != nil {
		return err
	}

	g, err := heat.New(f.node, bc, term, f.params,
		heat.WithLogger(a.logger), heat.WithMaxIterations(f.maxIter))
	if err != nil {
		return err
	}
	u, err := separable.Evaluate(g, f.tol, method)
	if err != nil {
		return err
	}
	a.logger.Debug("eval: done",
		"contribution", term.String(), "dim", f.node.Dim,
		"iterations", g.LastIterations(), "abs_err", g.LastAbsoluteError())

	fmt.Fprintf(cmd.OutOrStdout(), "%.10g\n", u)
	return nil
}
