// Package hashing implements the digest, salt, pepper, and MAC operations
// behind the demohash application.
package hashing

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies one of the supported digest algorithms.
type Algorithm string

// The supported algorithm identifiers. The set is closed: anything else,
// including md5, is rejected with ErrUnsupportedAlgorithm.
const (
	AlgorithmSHA1    Algorithm = "sha1"
	AlgorithmSHA224  Algorithm = "sha224"
	AlgorithmSHA256  Algorithm = "sha256"
	AlgorithmSHA384  Algorithm = "sha384"
	AlgorithmSHA512  Algorithm = "sha512"
	AlgorithmSHA3256 Algorithm = "sha3_256"
	AlgorithmSHA3512 Algorithm = "sha3_512"
	AlgorithmBlake2b Algorithm = "blake2b"
	AlgorithmBlake2s Algorithm = "blake2s"
	AlgorithmBlake3  Algorithm = "blake3"
)

// DefaultAlgorithm is used whenever the caller does not pick an algorithm.
const DefaultAlgorithm = AlgorithmSHA256

// algorithmInfo carries the registry metadata for one algorithm.
type algorithmInfo struct {
	digestSize  int
	hmacCapable bool
}

// algorithms is the closed registry of supported algorithms. hmacCapable
// marks the ones with a block size defined for the HMAC construction;
// blake3 is keyed natively and has no standard HMAC variant.
var algorithms = map[Algorithm]algorithmInfo{
	AlgorithmSHA1:    {digestSize: sha1.Size, hmacCapable: true},
	AlgorithmSHA224:  {digestSize: sha256.Size224, hmacCapable: true},
	AlgorithmSHA256:  {digestSize: sha256.Size, hmacCapable: true},
	AlgorithmSHA384:  {digestSize: sha512.Size384, hmacCapable: true},
	AlgorithmSHA512:  {digestSize: sha512.Size, hmacCapable: true},
	AlgorithmSHA3256: {digestSize: 32, hmacCapable: true},
	AlgorithmSHA3512: {digestSize: 64, hmacCapable: true},
	AlgorithmBlake2b: {digestSize: blake2b.Size, hmacCapable: true},
	AlgorithmBlake2s: {digestSize: blake2s.Size, hmacCapable: true},
	AlgorithmBlake3:  {digestSize: 32, hmacCapable: false},
}

// New returns a fresh digest instance for the given algorithm. Every call
// returns an independent hash.Hash, so concurrent callers never share state.
func New(algorithm Algorithm) (hash.Hash, error) {
	switch algorithm {
	case AlgorithmSHA1:
		return sha1.New(), nil
	case AlgorithmSHA224:
		return sha256.New224(), nil
	case AlgorithmSHA256:
		return sha256.New(), nil
	case AlgorithmSHA384:
		return sha512.New384(), nil
	case AlgorithmSHA512:
		return sha512.New(), nil
	case AlgorithmSHA3256:
		return sha3.New256(), nil
	case AlgorithmSHA3512:
		return sha3.New512(), nil
	case AlgorithmBlake2b:
		return blake2b.New512(nil)
	case AlgorithmBlake2s:
		return blake2s.New256(nil)
	case AlgorithmBlake3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

// ParseAlgorithm validates a caller-supplied algorithm identifier. Matching
// is exact and case-sensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	algorithm := Algorithm(s)
	if _, ok := algorithms[algorithm]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnsupportedAlgorithm, s)
	}
	return algorithm, nil
}

// DigestSize returns the size in bytes of the algorithm's digest output.
func DigestSize(algorithm Algorithm) (int, error) {
	info, ok := algorithms[algorithm]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return info.digestSize, nil
}

// HMACCapable reports whether the algorithm can be used with HMACText.
// Unknown algorithms report false.
func HMACCapable(algorithm Algorithm) bool {
	return algorithms[algorithm].hmacCapable
}

// Supported returns the registered algorithm identifiers in sorted order.
func Supported() []Algorithm {
	supported := make([]Algorithm, 0, len(algorithms))
	for algorithm := range algorithms {
		supported = append(supported, algorithm)
	}
	sort.Slice(supported, func(i, j int) bool { return supported[i] < supported[j] })
	return supported
}
