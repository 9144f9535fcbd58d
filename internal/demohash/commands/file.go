// Package commands contains the operations behind the demohash
// command-line interface.
package commands

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/lauolme/demohash/internal/demohash/hashing"
	"github.com/lauolme/demohash/internal/demohash/types"
)

// fileDigestResult holds the outcome of hashing a single file in a worker.
type fileDigestResult struct {
	Path   string
	Digest string
	Size   int64
	Err    error
}

// findAllFiles walks the directory tree and returns all regular files to be
// hashed, respecting the .demohashignore configuration.
func findAllFiles(rootDir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == rootDir {
			return nil
		}

		if IsPathIgnored(rootDir, path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return files, nil
}

// digestOneFile streams a single file through the digest engine.
func digestOneFile(path string, algorithm hashing.Algorithm, chunkSize int) fileDigestResult {
	file, err := os.Open(path)
	if err != nil {
		return fileDigestResult{Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fileDigestResult{Path: path, Err: err}
	}

	digest, err := hashing.HashStream(file, algorithm, chunkSize)
	if err != nil {
		return fileDigestResult{Path: path, Err: err}
	}

	return fileDigestResult{Path: path, Digest: digest, Size: info.Size()}
}

// digestFilesConcurrently creates a worker pool of goroutines to hash files
// in parallel. It returns the results sorted by path, along with the total
// number of bytes hashed.
func digestFilesConcurrently(paths []string, algorithm hashing.Algorithm, chunkSize int) ([]types.FileDigest, int64, error) {
	numJobs := len(paths)
	jobs := make(chan string, numJobs)
	results := make(chan fileDigestResult, numJobs)

	// Use a WaitGroup to wait for all goroutines to finish.
	var wg sync.WaitGroup
	numWorkers := runtime.NumCPU()

	// Start worker goroutines.
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- digestOneFile(path, algorithm, chunkSize)
			}
		}()
	}

	// Send all file paths to the jobs channel.
	for _, path := range paths {
		jobs <- path
	}
	close(jobs) // Signal that no more jobs will be sent.

	// Wait for all workers to finish, then close the results channel.
	wg.Wait()
	close(results)

	// Collect results and check for errors.
	digests := make([]types.FileDigest, 0, numJobs)
	var totalSize int64
	for res := range results {
		if res.Err != nil {
			return nil, 0, fmt.Errorf("failed to hash file %s: %w", res.Path, res.Err)
		}
		digests = append(digests, types.FileDigest{
			Path:      res.Path,
			Algorithm: string(algorithm),
			Digest:    res.Digest,
			Size:      res.Size,
		})
		totalSize += res.Size
	}

	// Sort by path so the output order is deterministic.
	sort.Slice(digests, func(i, j int) bool {
		return digests[i].Path < digests[j].Path
	})

	return digests, totalSize, nil
}

// collectFiles expands the argument list: directories are walked
// recursively, everything else must be a regular file.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("could not resolve absolute path for %s: %w", p, err)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}

		if info.IsDir() {
			found, err := findAllFiles(absPath)
			if err != nil {
				return nil, fmt.Errorf("error finding files in %s: %w", p, err)
			}
			files = append(files, found...)
			continue
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("not a regular file: %s", p)
		}
		files = append(files, absPath)
	}
	return files, nil
}

// Files hashes every given path, walking directories recursively, and
// prints one "digest  path" line per file. An optional CSV report and a
// JSON mode cover the machine-readable cases.
func Files(paths []string, algorithm string, chunkSize int, csvPath string, asJSON bool) error {
	alg, err := hashing.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}
	if chunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", hashing.ErrInvalidArgument, chunkSize)
	}

	files, err := collectFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No files to hash.")
		return nil
	}

	digests, totalSize, err := digestFilesConcurrently(files, alg, chunkSize)
	if err != nil {
		return err
	}

	if csvPath != "" {
		if err := writeCSVReport(csvPath, digests); err != nil {
			return fmt.Errorf("failed to write CSV report: %w", err)
		}
	}

	if asJSON {
		data, err := json.MarshalIndent(digests, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, d := range digests {
		fmt.Printf("%s  %s\n", d.Digest, d.Path)
	}

	fmt.Printf("\n✅ Hashed %d files (%s) using %s.\n", len(digests), formatBytes(totalSize, 2), alg)
	if csvPath != "" {
		fmt.Printf("   - CSV report: %s\n", csvPath)
	}
	return nil
}

// formatBytes is a utility to convert bytes into a human-readable string (KB, MB, GB).
func formatBytes(bytes int64, decimals int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	const k = 1024
	if decimals < 0 {
		decimals = 0
	}
	sizes := []string{"Bytes", "KB", "MB", "GB", "TB"}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}

	return fmt.Sprintf("%.*f %s", decimals, float64(bytes)/math.Pow(k, float64(i)), sizes[i])
}
