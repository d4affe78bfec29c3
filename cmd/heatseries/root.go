package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatseries/internal/logging"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	root := &cobra.Command{
		Use:   "heatseries",
		Short: "Heat equation solutions as truncated infinite series",
		Long: `heatseries evaluates analytical solutions of the heat equation on a line,
a square or a cube with Dirichlet walls, by summing their Fourier series.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), lvl)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newEvalCmd(a),
		newProfileCmd(a),
		newMiscCmd(a),
		newVersionCmd(),
	)

	return root
}
