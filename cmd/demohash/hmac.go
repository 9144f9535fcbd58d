package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lauolme/demohash/internal/demohash/commands"
	"github.com/lauolme/demohash/internal/demohash/hashing"
	"github.com/lauolme/demohash/internal/demohash/secrets"
	"github.com/spf13/cobra"
)

// NewHMACCommand creates the 'hmac' command for the CLI.
func NewHMACCommand() *cobra.Command {
	var algorithm string
	var keyValue string
	var configFile string

	cmd := &cobra.Command{
		Use:   "hmac <text>",
		Short: "Compute a keyed-hash message authentication code.",
		Long: `Computes an HMAC over the text. The key is taken from --key, the config
file, or the DEMOHASH_HMAC_KEY environment variable. Keys are expected to
be base64; a value that does not decode is used as raw UTF-8 bytes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveMACKey(keyValue, configFile)
			if err != nil {
				return err
			}
			return commands.Mac(args[0], algorithm, key)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(hashing.DefaultAlgorithm), "The hash algorithm to use")
	cmd.Flags().StringVarP(&keyValue, "key", "k", "", "The base64-encoded HMAC key")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to the config file (defaults to .demohash.yaml)")
	cmd.RegisterFlagCompletionFunc("algorithm", algorithmCompletions)

	return cmd
}

// resolveMACKey picks the HMAC key from the --key flag or, failing that,
// from the secrets source.
func resolveMACKey(keyValue, configFile string) ([]byte, error) {
	if keyValue != "" {
		key, wasBase64 := secrets.DecodeKey(keyValue)
		if !wasBase64 {
			fmt.Fprintln(os.Stderr, "Warning: key is not valid base64, using its raw UTF-8 bytes")
		}
		return key, nil
	}

	source, err := secrets.Load(configFile)
	if err != nil {
		return nil, err
	}
	key, ok := source.HMACKey()
	if !ok {
		return nil, errors.New("no HMAC key configured: set \"hmac_key\" in the config file, DEMOHASH_HMAC_KEY, or pass --key")
	}
	return key, nil
}
