package main

import (
	"github.com/lauolme/demohash/internal/demohash/commands"
	"github.com/spf13/cobra"
)

func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <hash> <hash>",
		Short: "Compare two hash strings in constant time.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Compare(args[0], args[1])
		},
	}
	return cmd
}
