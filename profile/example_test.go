package profile_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heatseries/heat"
	"github.com/katalvlaran/heatseries/profile"
)

// ExampleRun samples the centre of a cooling rod at three times.
func ExampleRun() {
	spec := profile.Spec{
		Node:         heat.Node{Dim: 1, L: 1, Alpha: 1},
		Boundary:     heat.Dirichlet,
		Contribution: heat.Initial,
		Params:       heat.Params{A0: 300},
		Tolerance:    1e-15,
		Times:        []float64{0, 0.01, 1},
		Points:       []profile.Point{{X: 0.5}},
	}
	tbl, err := profile.Run(context.Background(), spec, profile.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < tbl.Rows(); i++ {
		v, _ := tbl.At(i, 0)
		fmt.Printf("t=%g u=%.4f\n", spec.Times[i], v)
	}
	// Output:
	// t=0 u=300.0000
	// t=0.01 u=299.7558
	// t=1 u=0.0198
}
