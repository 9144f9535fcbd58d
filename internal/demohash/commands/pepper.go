package commands

import (
	"fmt"

	"github.com/lauolme/demohash/internal/demohash/hashing"
)

// Peppered hashes text prefixed with the configured pepper and prints only
// the digest. The pepper itself never appears in any output.
func Peppered(text, algorithm string, pepper []byte) error {
	alg, err := hashing.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	digest, err := hashing.ApplyPepper(text, pepper, alg)
	if err != nil {
		return err
	}

	fmt.Println(digest)
	return nil
}
