package profile

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heatseries/heat"
	"github.com/katalvlaran/heatseries/separable"
)

// Spec describes one sampling job.
//
// Node is a template: its coordinates and time are overwritten per sample,
// its Axis and BoundaryAxis are driven by separable.Evaluate.
type Spec struct {
	Node         heat.Node
	Boundary     heat.BoundaryKind
	Contribution heat.ContributionKind
	Params       heat.Params
	Tolerance    float64
	Method       separable.Method
	Times        []float64
	Points       []Point
}

// Validate checks the grid and the tolerance. Physical parameters are
// validated by heat.New.
func (s Spec) Validate() error {
	if len(s.Times) == 0 || len(s.Points) == 0 {
		return fmt.Errorf("Spec.Validate: %d times, %d points: %w", len(s.Times), len(s.Points), ErrEmptyGrid)
	}
	if !(s.Tolerance > 0 && s.Tolerance < 1) {
		return fmt.Errorf("Spec.Validate: tol=%g: %w", s.Tolerance, ErrInvalidTolerance)
	}
	for _, t := range s.Times {
		if !(t >= 0) || math.IsInf(t, 0) {
			return fmt.Errorf("Spec.Validate: t=%g: %w", t, heat.ErrNegativeTime)
		}
	}

	return nil
}

func (s Spec) newGenerator(cfg runConfig) (*heat.Generator, error) {
	return heat.New(s.Node, s.Boundary, s.Contribution, s.Params,
		heat.WithLogger(cfg.logger), heat.WithMaxIterations(cfg.maxIter))
}

// Run evaluates spec at every (time, point) pair.
// Stage 1 (Validate): grid, tolerance and a probe generator.
// Stage 2 (Execute): feed sample indices to the workers; each worker owns
// one generator and writes disjoint cells of the table.
// Stage 3 (Finalize): first error wins; cancellation surfaces as ctx.Err().
func Run(ctx context.Context, spec Spec, opts ...Option) (*Table, error) {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if _, err := spec.newGenerator(cfg); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tbl, err := NewTable(len(spec.Times), len(spec.Points))
	if err != nil {
		return nil, err
	}
	total := tbl.r * tbl.c
	workers := min(cfg.workers, total)
	cfg.logger.Debug("profile: run started",
		"workers", workers, "times", tbl.r, "points", tbl.c,
		"contribution", spec.Contribution.String(), "method", spec.Method.String())

	grp, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	grp.Go(func() error {
		defer close(jobs)
		for idx := 0; idx < total; idx++ {
			select {
			case jobs <- idx:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		grp.Go(func() error {
			gen, err := spec.newGenerator(cfg)
			if err != nil {
				return err
			}
			for idx := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				row, col := idx/tbl.c, idx%tbl.c
				v, err := sample(gen, spec, spec.Times[row], spec.Points[col])
				if err != nil {
					return &SampleError{Time: spec.Times[row], Point: spec.Points[col], Err: err}
				}
				tbl.data[idx] = v
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		cfg.logger.Debug("profile: run aborted", "err", err)
		return nil, err
	}
	cfg.logger.Debug("profile: run finished", "samples", total)

	return tbl, nil
}

func sample(g *heat.Generator, spec Spec, t float64, p Point) (float64, error) {
	if err := g.SetTime(t); err != nil {
		return 0, err
	}
	g.SetX(p.X)
	g.SetY(p.Y)
	g.SetZ(p.Z)

	return separable.Evaluate(g, spec.Tolerance, spec.Method)
}
