package commands

import (
	"encoding/csv"
	"os"

	"github.com/lauolme/demohash/internal/demohash/types"
)

// writeCSVReport writes one row per file digest. The columns are filename,
// algorithm, and hash, in that order.
func writeCSVReport(path string, digests []types.FileDigest) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"filename", "algorithm", "hash"}); err != nil {
		return err
	}
	for _, d := range digests {
		if err := writer.Write([]string{d.Path, d.Algorithm, d.Digest}); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	// Ensure the report is written to stable storage.
	return file.Sync()
}
