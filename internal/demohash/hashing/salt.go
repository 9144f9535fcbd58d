package hashing

import (
	"crypto/rand"
	"fmt"
)

// Salt length bounds in bytes. DefaultSaltLength is used when the caller
// does not request a specific length.
const (
	MinSaltLength     = 4
	MaxSaltLength     = 64
	DefaultSaltLength = 16
)

// GenerateSalt returns length cryptographically random bytes. The length
// must be between MinSaltLength and MaxSaltLength inclusive.
func GenerateSalt(length int) ([]byte, error) {
	if length < MinSaltLength || length > MaxSaltLength {
		return nil, fmt.Errorf("%w: salt length must be between %d and %d bytes, got %d",
			ErrInvalidArgument, MinSaltLength, MaxSaltLength, length)
	}

	salt := make([]byte, length)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// NormalizeSalt resolves an optional hex-encoded salt. A nil pointer means
// no salt was provided, and a fresh DefaultSaltLength salt is generated.
// Otherwise the value must decode to between MinSaltLength and
// MaxSaltLength bytes.
func NormalizeSalt(saltHex *string) ([]byte, error) {
	if saltHex == nil {
		return GenerateSalt(DefaultSaltLength)
	}

	salt, err := DecodeHex(*saltHex)
	if err != nil {
		return nil, err
	}
	if len(salt) < MinSaltLength || len(salt) > MaxSaltLength {
		return nil, fmt.Errorf("%w: salt must decode to between %d and %d bytes, got %d",
			ErrInvalidArgument, MinSaltLength, MaxSaltLength, len(salt))
	}
	return salt, nil
}

// ApplySalt hashes the salt prepended to the UTF-8 bytes of text. It returns
// the hex-encoded salt alongside the hex digest, because verifying the
// digest later requires the exact salt that produced it. The result is
// deterministic for a fixed salt, text, and algorithm.
func ApplySalt(text string, salt []byte, algorithm Algorithm) (string, string, error) {
	if len(salt) < MinSaltLength || len(salt) > MaxSaltLength {
		return "", "", fmt.Errorf("%w: salt length must be between %d and %d bytes, got %d",
			ErrInvalidArgument, MinSaltLength, MaxSaltLength, len(salt))
	}

	payload := make([]byte, 0, len(salt)+len(text))
	payload = append(payload, salt...)
	payload = append(payload, text...)

	digest, err := HashBytes(payload, algorithm)
	if err != nil {
		return "", "", err
	}
	return EncodeDigest(salt), digest, nil
}
