package commands

import (
	"fmt"

	"github.com/lauolme/demohash/internal/demohash/hashing"
)

// Salted hashes text prefixed with a salt and prints both the salt and the
// digest, since verifying the digest later needs the exact salt again. An
// empty saltHex generates a fresh random salt of the requested length.
func Salted(text, algorithm, saltHex string, length int) error {
	alg, err := hashing.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	var salt []byte
	if saltHex == "" {
		salt, err = hashing.GenerateSalt(length)
	} else {
		salt, err = hashing.NormalizeSalt(&saltHex)
	}
	if err != nil {
		return err
	}

	saltOut, digest, err := hashing.ApplySalt(text, salt, alg)
	if err != nil {
		return err
	}

	fmt.Printf("Salt:   %s\n", saltOut)
	fmt.Printf("Digest: %s\n", digest)
	return nil
}
