// Package commands contains the operations behind the demohash
// command-line interface.
package commands

import (
	"fmt"
	"io"

	"github.com/lauolme/demohash/internal/demohash/hashing"
)

// Text hashes the UTF-8 bytes of text and prints the hex digest.
func Text(text string, algorithm string) error {
	alg, err := hashing.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	digest, err := hashing.HashText(text, alg)
	if err != nil {
		return err
	}

	fmt.Println(digest)
	return nil
}

// Stream hashes everything read from r and prints the hex digest. It backs
// text hashing from stdin, where input of any size must pass through in
// fixed-size chunks.
func Stream(r io.Reader, algorithm string, chunkSize int) error {
	alg, err := hashing.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	digest, err := hashing.HashStream(r, alg, chunkSize)
	if err != nil {
		return err
	}

	fmt.Println(digest)
	return nil
}
