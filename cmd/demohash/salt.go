package main

import (
	"github.com/lauolme/demohash/internal/demohash/commands"
	"github.com/lauolme/demohash/internal/demohash/hashing"
	"github.com/spf13/cobra"
)

func NewSaltCommand() *cobra.Command {
	var algorithm string
	var saltHex string
	var length int

	cmd := &cobra.Command{
		Use:   "salt <text>",
		Short: "Hash text with a random or caller-provided salt.",
		Long: `Prepends a salt to the text before hashing and prints both the salt and
the digest, so the result can be verified later. Without --salt a fresh
random salt is generated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Salted(args[0], algorithm, saltHex, length)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(hashing.DefaultAlgorithm), "The hash algorithm to use")
	cmd.Flags().StringVarP(&saltHex, "salt", "s", "", "A hex-encoded salt to reuse (random if omitted)")
	cmd.Flags().IntVarP(&length, "length", "l", hashing.DefaultSaltLength, "Length in bytes of the generated salt (ignored with --salt)")
	cmd.RegisterFlagCompletionFunc("algorithm", algorithmCompletions)

	return cmd
}
