package main

import (
	"fmt"

	"github.com/lauolme/demohash/internal/demohash/hashing"
	"github.com/spf13/cobra"
)

// algorithmCompletions provides dynamic tab completion for the --algorithm
// flag. It suggests every supported algorithm along with its digest size.
func algorithmCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Create a list of suggestions.
	var suggestions []string
	for _, algorithm := range hashing.Supported() {
		size, err := hashing.DigestSize(algorithm)
		if err != nil {
			continue
		}
		suggestions = append(suggestions, fmt.Sprintf("%s\t%d-byte digest", algorithm, size))
	}

	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
