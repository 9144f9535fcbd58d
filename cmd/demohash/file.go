package main

import (
	"github.com/lauolme/demohash/internal/demohash/commands"
	"github.com/lauolme/demohash/internal/demohash/hashing"
	"github.com/spf13/cobra"
)

// NewFileCommand creates the 'file' command for the CLI.
func NewFileCommand() *cobra.Command {
	var algorithm string
	var chunkSize int
	var csvPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "file <path>...",
		Short: "Hash files or whole directory trees.",
		Long: `Hashes each given file by streaming it in fixed-size chunks, so large
files never have to fit in memory. Directories are walked recursively;
patterns listed in a .demohashignore file are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Files(args, algorithm, chunkSize, csvPath, asJSON)
		},
	}

	// Define flags for the command.
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(hashing.DefaultAlgorithm), "The hash algorithm to use")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", hashing.DefaultChunkSize, "Read buffer size in bytes")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write a CSV report to the given path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON instead of plain text")
	cmd.RegisterFlagCompletionFunc("algorithm", algorithmCompletions)

	return cmd
}
