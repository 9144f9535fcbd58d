package commands

import (
	"fmt"

	"github.com/lauolme/demohash/internal/demohash/hashing"
)

// Mac computes the HMAC of text under key and prints the hex MAC.
func Mac(text, algorithm string, key []byte) error {
	alg, err := hashing.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	mac, err := hashing.HMACText(text, key, alg)
	if err != nil {
		return err
	}

	fmt.Println(mac)
	return nil
}
