package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heatseries/heat"
	"github.com/katalvlaran/heatseries/profile"
	"github.com/katalvlaran/heatseries/separable"
)

// MapRun converts a validated DTO into a Run.
func MapRun(path string, dto YAMLRun) (Run, error) {
	bc, err := heat.ParseBoundaryKind(dto.Boundary)
	if err != nil {
		return Run{}, invalidField(path, "boundary", err)
	}
	term, err := heat.ParseContributionKind(dto.Contribution)
	if err != nil {
		return Run{}, invalidField(path, "contribution", err)
	}
	method, err := separable.ParseMethod(dto.Method)
	if err != nil {
		return Run{}, invalidField(path, "method", err)
	}

	points, err := mapPoints(dto)
	if err != nil {
		return Run{}, invalidField(path, "points", err)
	}
	for i, p := range points {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			if c > dto.Length {
				return Run{}, invalidField(path, fmt.Sprintf("points[%d]", i),
					fmt.Errorf("coordinate %g outside [0, %g]", c, dto.Length))
			}
		}
	}

	times := make([]float64, len(dto.Times))
	copy(times, dto.Times)

	return Run{
		Spec: profile.Spec{
			Node: heat.Node{
				Dim:   dto.Dimension,
				L:     dto.Length,
				Alpha: dto.Diffusivity,
			},
			Boundary:     bc,
			Contribution: term,
			Params: heat.Params{
				A0: dto.Params.A0,
				A1: dto.Params.A1,
				A2: dto.Params.A2,
				K1: dto.Params.K1,
				K2: dto.Params.K2,
			},
			Tolerance: dto.Tolerance,
			Method:    method,
			Times:     times,
			Points:    points,
		},
		Workers:       dto.Workers,
		MaxIterations: dto.MaxIterations,
	}, nil
}

func mapPoints(dto YAMLRun) ([]profile.Point, error) {
	switch {
	case len(dto.Points) > 0 && dto.Grid != nil:
		return nil, errors.New("points and grid are mutually exclusive")
	case len(dto.Points) > 0:
		out := make([]profile.Point, len(dto.Points))
		for i, p := range dto.Points {
			out[i] = profile.Point{X: p.X, Y: p.Y, Z: p.Z}
		}
		return out, nil
	case dto.Grid != nil:
		xs, err := profile.Linspace(dto.Grid.From, dto.Grid.To, dto.Grid.Count)
		if err != nil {
			return nil, err
		}
		out := make([]profile.Point, len(xs))
		for i, x := range xs {
			out[i] = profile.Point{X: x, Y: dto.Grid.Y, Z: dto.Grid.Z}
		}
		return out, nil
	}
	return nil, errors.New("one of points or grid is required")
}
