package hashing

import (
	"encoding/hex"
	"fmt"
)

// EncodeDigest returns the lowercase hex form of raw digest bytes. All
// digests produced by this package go through it.
func EncodeDigest(digest []byte) string {
	return hex.EncodeToString(digest)
}

// DecodeHex decodes a hex string into bytes. Both cases are accepted on
// input; malformed input is reported as ErrInvalidArgument.
func DecodeHex(s string) ([]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed hex: %v", ErrInvalidArgument, err)
	}
	return raw, nil
}
