package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heatseries/internal/config"
	"github.com/katalvlaran/heatseries/profile"
)

// profileReport is the yaml rendering of a Table.
type profileReport struct {
	Contribution string        `yaml:"contribution"`
	Method       string        `yaml:"method"`
	Points       []reportPoint `yaml:"points"`
	Rows         []reportRow   `yaml:"rows"`
}

type reportPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type reportRow struct {
	T      float64   `yaml:"t"`
	Values []float64 `yaml:"values,flow"`
}

func newProfileCmd(a *app) *cobra.Command {
	var (
		cfgPath string
		format  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Sample a run file over its (time, point) grid",
		Long: `Loads a YAML run file, evaluates its contribution at every time and point
in parallel and prints one row per time.`,
		Example: `  heatseries profile --config source.yaml --format yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("profile: --format %q: must be text or yaml", format)
			}
			run, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			opts := append(run.Options(), profile.WithLogger(a.logger))
			if workers > 0 {
				opts = append(opts, profile.WithWorkers(workers))
			}

			tbl, err := profile.Run(cmd.Context(), run.Spec, opts...)
			if err != nil {
				return err
			}
			if format == "yaml" {
				return writeYAML(cmd.OutOrStdout(), run.Spec, tbl)
			}
			return writeText(cmd.OutOrStdout(), run.Spec, tbl)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Run file (YAML)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count, overrides the run file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func writeText(w io.Writer, spec profile.Spec, tbl *profile.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	head := make([]string, 0, len(spec.Points)+1)
	head = append(head, "t")
	for _, p := range spec.Points {
		head = append(head, p.String())
	}
	fmt.Fprintln(tw, strings.Join(head, "\t")+"\t")

	for i, t := range spec.Times {
		row, err := tbl.Row(i)
		if err != nil {
			return err
		}
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, fmt.Sprintf("%g", t))
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%.6f", v))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	return tw.Flush()
}

func writeYAML(w io.Writer, spec profile.Spec, tbl *profile.Table) error {
	rep := profileReport{
		Contribution: spec.Contribution.String(),
		Method:       spec.Method.String(),
		Points:       make([]reportPoint, len(spec.Points)),
		Rows:         make([]reportRow, len(spec.Times)),
	}
	for i, p := range spec.Points {
		rep.Points[i] = reportPoint{X: p.X, Y: p.Y, Z: p.Z}
	}
	for i, t := range spec.Times {
		row, err := tbl.Row(i)
		if err != nil {
			return err
		}
		rep.Rows[i] = reportRow{T: t, Values: row}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
