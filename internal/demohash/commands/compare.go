package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lauolme/demohash/internal/demohash/hashing"
)

// Compare checks two hex digests for equality in constant time and prints
// the verdict. Surrounding whitespace is trimmed first, since digests tend
// to arrive pasted with stray newlines. A mismatch is reported as an error
// so the command exits non-zero.
func Compare(first, second string) error {
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)

	if !hashing.CompareHashes(first, second) {
		return errors.New("hashes do not match")
	}

	fmt.Println("✅ Hashes match.")
	return nil
}
