package main

import (
	"github.com/lauolme/demohash/internal/demohash/commands"
	"github.com/spf13/cobra"
)

func NewAlgorithmsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported hash algorithms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Algorithms()
		},
	}
	return cmd
}
