package hashing

import (
	"crypto/hmac"
	"fmt"
	"hash"
)

// HMACText computes the HMAC of the UTF-8 bytes of text under key and
// returns it as a lowercase hex string. The key must not be empty, and the
// algorithm must have an HMAC block size defined: blake3 is rejected with
// ErrUnsupportedAlgorithm because no standard HMAC construction exists for
// it.
func HMACText(text string, key []byte, algorithm Algorithm) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("%w: key must not be empty", ErrInvalidArgument)
	}

	info, ok := algorithms[algorithm]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnsupportedAlgorithm, algorithm)
	}
	if !info.hmacCapable {
		return "", fmt.Errorf("%w %q: no HMAC construction defined", ErrUnsupportedAlgorithm, algorithm)
	}

	mac := hmac.New(func() hash.Hash {
		hasher, err := New(algorithm)
		if err != nil {
			// Unkeyed constructors for registered algorithms cannot fail.
			panic(err)
		}
		return hasher
	}, key)
	mac.Write([]byte(text))

	return EncodeDigest(mac.Sum(nil)), nil
}
