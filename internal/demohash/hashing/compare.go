package hashing

import "crypto/subtle"

// CompareHashes reports whether two hex digest strings are equal, taking
// time independent of where they differ. The comparison is exact:
// case-sensitive and with no whitespace normalization. Inputs of different
// lengths are unequal, and length itself is the only thing a timing
// observer can learn.
func CompareHashes(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
