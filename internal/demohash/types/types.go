package types

// FileDigest describes the digest computed for a single file. The JSON tags
// back the machine-readable report output.
type FileDigest struct {
	Path      string `json:"path"`
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
	Size      int64  `json:"size"`
}
