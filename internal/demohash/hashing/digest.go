// Package hashing implements the digest, salt, pepper, and MAC operations
// behind the demohash application.
package hashing

import (
	"fmt"
	"io"
)

// DefaultChunkSize is the read size used for streaming when the caller does
// not request a specific one.
const DefaultChunkSize = 8192

// HashBytes calculates the digest of an in-memory byte slice and returns it
// as a lowercase hex-encoded string.
func HashBytes(data []byte, algorithm Algorithm) (string, error) {
	hasher, err := New(algorithm)
	if err != nil {
		return "", err
	}
	hasher.Write(data)
	return EncodeDigest(hasher.Sum(nil)), nil
}

// HashText calculates the digest of the UTF-8 bytes of text. Empty text is
// valid and yields the algorithm's well-known empty-input digest.
func HashText(text string, algorithm Algorithm) (string, error) {
	return HashBytes([]byte(text), algorithm)
}

// HashStream calculates the digest of everything read from r, feeding the
// hash at most chunkSize bytes at a time. Memory use stays proportional to
// chunkSize no matter how long the stream is, and the resulting digest does
// not depend on how the reads happen to be sized.
// A read failure mid-stream discards the partial state and returns the
// wrapped error.
func HashStream(r io.Reader, algorithm Algorithm, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		return "", fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, chunkSize)
	}

	hasher, err := New(algorithm)
	if err != nil {
		return "", err
	}

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read stream: %w", err)
		}
	}

	return EncodeDigest(hasher.Sum(nil)), nil
}
