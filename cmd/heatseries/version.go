package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatseries"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of heatseries",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "heatseries version %s\n", heatseries.Version)
		},
	}
}
