package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{Use: "demohash"}

	// Add commands
	rootCmd.AddCommand(NewTextCommand())
	rootCmd.AddCommand(NewFileCommand())
	rootCmd.AddCommand(NewSaltCommand())
	rootCmd.AddCommand(NewPepperCommand())
	rootCmd.AddCommand(NewHMACCommand())
	rootCmd.AddCommand(NewCompareCommand())
	rootCmd.AddCommand(NewAlgorithmsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
