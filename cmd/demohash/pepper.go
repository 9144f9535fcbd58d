package main

import (
	"errors"

	"github.com/lauolme/demohash/internal/demohash/commands"
	"github.com/lauolme/demohash/internal/demohash/hashing"
	"github.com/lauolme/demohash/internal/demohash/secrets"
	"github.com/spf13/cobra"
)

// NewPepperCommand creates the 'pepper' command for the CLI.
func NewPepperCommand() *cobra.Command {
	var algorithm string
	var configFile string

	cmd := &cobra.Command{
		Use:   "pepper <text>",
		Short: "Hash text with the configured pepper.",
		Long: `Prepends the configured pepper to the text before hashing. The pepper is
read from the config file or the DEMOHASH_PEPPER environment variable and
is never printed; only the digest is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := secrets.Load(configFile)
			if err != nil {
				return err
			}
			pepper, ok := source.Pepper()
			if !ok {
				return errors.New("no pepper configured: set \"pepper\" in the config file or DEMOHASH_PEPPER")
			}
			return commands.Peppered(args[0], algorithm, pepper)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(hashing.DefaultAlgorithm), "The hash algorithm to use")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to the config file (defaults to .demohash.yaml)")
	cmd.RegisterFlagCompletionFunc("algorithm", algorithmCompletions)

	return cmd
}
