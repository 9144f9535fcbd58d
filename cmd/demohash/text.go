package main

import (
	"os"

	"github.com/lauolme/demohash/internal/demohash/commands"
	"github.com/lauolme/demohash/internal/demohash/hashing"
	"github.com/spf13/cobra"
)

func NewTextCommand() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "text [text]",
		Short: "Hash a string of text.",
		Long: `Hashes a string of text and prints the digest as lowercase hex.

When no argument is given (or the argument is "-"), the text is read from
standard input and hashed as-is, including any trailing newline.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return commands.Stream(os.Stdin, algorithm, hashing.DefaultChunkSize)
			}
			return commands.Text(args[0], algorithm)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(hashing.DefaultAlgorithm), "The hash algorithm to use")
	cmd.RegisterFlagCompletionFunc("algorithm", algorithmCompletions)

	return cmd
}
