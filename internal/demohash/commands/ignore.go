package commands

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/denormal/go-gitignore"
)

// IgnoreFilename is the name of the file containing user-defined ignore
// patterns for directory hashing.
const IgnoreFilename = ".demohashignore"

// defaultIgnorePatterns contains the paths that are always skipped when
// walking a directory tree.
var defaultIgnorePatterns = []string{
	// Use a glob pattern for the directory so it works with the gitignore library.
	".git/**",
	// Files should not have a trailing slash.
	IgnoreFilename,
}

var (
	// ignoreCache stores compiled gitignore.GitIgnore matchers so the
	// ignore file is read and parsed once per directory. The key is the
	// canonical absolute path to a directory. A single mutex serializes all
	// access because the gitignore library misbehaves under concurrent use.
	ignoreCache = make(map[string]gitignore.GitIgnore)
	cacheMutex  = &sync.Mutex{}
)

// IsPathIgnored checks if a given path relative to baseDir should be
// skipped when hashing a directory tree.
func IsPathIgnored(baseDir, path string) bool {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Both arguments to filepath.Rel must use the same canonical pathing.
	canonicalBaseDir, err := filepath.EvalSymlinks(baseDir)
	if err != nil {
		canonicalBaseDir = baseDir // Fallback on error.
	}

	matcher, found := ignoreCache[canonicalBaseDir]
	if !found {
		matcher = loadIgnoreMatcher(canonicalBaseDir)
		ignoreCache[canonicalBaseDir] = matcher
	}

	canonicalPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		canonicalPath = path // Fallback on error.
	}

	relativePath, err := filepath.Rel(canonicalBaseDir, canonicalPath)
	if err != nil {
		// If the relative path cannot be determined, it is safest not to ignore.
		return false
	}
	// The gitignore library expects forward-slash separators, even on Windows.
	slashedPath := filepath.ToSlash(relativePath)

	// Try matching the relative path first, then fall back to the absolute one.
	match := matcher.Match(slashedPath)
	if match == nil {
		match = matcher.Match(canonicalPath)
	}
	if match == nil {
		return false
	}
	return match.Ignore()
}

// loadIgnoreMatcher compiles the default patterns plus the directory's
// ignore file, if one exists, into a gitignore matcher.
func loadIgnoreMatcher(baseDir string) gitignore.GitIgnore {
	rawPatterns := make([]string, len(defaultIgnorePatterns))
	copy(rawPatterns, defaultIgnorePatterns)

	ignoreFilePath := filepath.Join(baseDir, IgnoreFilename)
	if content, err := os.ReadFile(ignoreFilePath); err == nil {
		rawPatterns = append(rawPatterns, strings.Split(string(content), "\n")...)
	}

	// Clean up the patterns: drop comments and blank lines, normalize separators.
	var finalPatterns []string
	for _, p := range rawPatterns {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// Normalize Windows-style backslashes to forward slashes.
		trimmed = strings.ReplaceAll(trimmed, "\\", "/")

		// Convert directory patterns (ending with /) to glob patterns for
		// better gitignore compatibility.
		if strings.HasSuffix(trimmed, "/") && !strings.HasSuffix(trimmed, "**/") {
			trimmed = trimmed + "**"
		}
		finalPatterns = append(finalPatterns, trimmed)
	}

	reader := strings.NewReader(strings.Join(finalPatterns, "\n"))
	matcher := gitignore.New(
		reader,
		baseDir,
		// The error handler tells the parser to continue on error.
		func(err gitignore.Error) bool { return false },
	)

	// If the matcher fails to compile, return a "null" matcher that ignores nothing.
	if matcher == nil {
		return gitignore.New(strings.NewReader(""), "", nil)
	}

	return matcher
}

// ResetIgnoreState clears the ignore cache. This is used for testing.
func ResetIgnoreState() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	ignoreCache = make(map[string]gitignore.GitIgnore)
}
