package commands

import (
	"fmt"

	"github.com/lauolme/demohash/internal/demohash/hashing"
)

// Algorithms prints the table of supported algorithms.
func Algorithms() error {
	// Headers
	fmt.Printf("%-10s %-12s %s\n", "ALGORITHM", "DIGEST SIZE", "HMAC")
	// Separator
	fmt.Printf("%-10s %-12s %s\n", "=========", "===========", "====")

	for _, algorithm := range hashing.Supported() {
		size, err := hashing.DigestSize(algorithm)
		if err != nil {
			return err
		}
		hmacSupport := "yes"
		if !hashing.HMACCapable(algorithm) {
			hmacSupport = "no"
		}
		fmt.Printf("%-10s %-12s %s\n", algorithm, fmt.Sprintf("%d bytes", size), hmacSupport)
	}

	return nil
}
