package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatseries/misc"
)

func newMiscCmd(a *app) *cobra.Command {
	var (
		fn  string
		x   float64
		tol float64
	)

	cmd := &cobra.Command{
		Use:   "misc",
		Short: "Sum a trigonometric validation series",
		Long: `Sums sinn3 = Σ sin(kx)/k³ or altsinn3 = Σ (-1)^k sin(kx)/k³ for k ≥ 1 and
prints the result with the iteration count and the last term magnitude.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(tol > 0 && tol < 1) {
				return fmt.Errorf("misc: --tol %g: must be in (0, 1)", tol)
			}
			f, err := misc.ParseFunction(fn)
			if err != nil {
				return err
			}
			e, err := misc.New(f, x, misc.WithLogger(a.logger))
			if err != nil {
				return err
			}
			r := e.Result(tol)
			fmt.Fprintf(cmd.OutOrStdout(), "%s(%g) = %.10g (iterations=%d, abs_err=%.3e)\n",
				f, x, r, e.Iterations(), e.AbsErr())
			return nil
		},
	}

	cmd.Flags().StringVar(&fn, "function", "sinn3", "Series: sinn3 or altsinn3")
	cmd.Flags().Float64Var(&x, "x", 1, "Evaluation point in [0, π]")
	cmd.Flags().Float64Var(&tol, "tol", 1e-12, "Stopping tolerance, in (0, 1)")

	return cmd
}
