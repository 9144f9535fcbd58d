package hashing

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when an algorithm identifier is
	// not in the supported set, or when an operation (such as HMAC) is not
	// defined for an otherwise valid algorithm.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidArgument is returned for malformed or out-of-range input:
	// a salt that is not valid hex, a salt length outside the allowed
	// bounds, an empty pepper or MAC key, or a non-positive chunk size.
	ErrInvalidArgument = errors.New("invalid argument")
)
