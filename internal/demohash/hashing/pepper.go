package hashing

import "fmt"

// ApplyPepper hashes the pepper prepended to the UTF-8 bytes of text, using
// the same prepend convention as ApplySalt. Only the digest is returned:
// the pepper is a secret held by the caller and must never appear in
// output, so there is no pepper counterpart to the salt echo.
func ApplyPepper(text string, pepper []byte, algorithm Algorithm) (string, error) {
	if len(pepper) == 0 {
		return "", fmt.Errorf("%w: pepper must not be empty", ErrInvalidArgument)
	}

	payload := make([]byte, 0, len(pepper)+len(text))
	payload = append(payload, pepper...)
	payload = append(payload, text...)

	return HashBytes(payload, algorithm)
}
