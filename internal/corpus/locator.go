// Package corpus resolves the set of script files to validate.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// ErrEmptyCorpus means the samples directory exists but holds no matching
// files. Treated as an error rather than a vacuous success, since it almost
// always indicates misconfiguration.
var ErrEmptyCorpus = errors.New("no matching script files")

// LocateFile returns a one-element sequence for an explicit file path.
func LocateFile(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, expected a file", path)
	}
	return []string{path}, nil
}

// LocateDir returns all regular files directly inside dir whose names match
// pattern, sorted case-insensitively by name. The same directory contents
// always yield the same order regardless of readdir order.
func LocateDir(dir, pattern string) ([]string, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("samples directory not found: %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !matcher.Match(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s (pattern %q)", ErrEmptyCorpus, dir, pattern)
	}

	sort.Slice(files, func(i, j int) bool {
		a, b := filepath.Base(files[i]), filepath.Base(files[j])
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	})

	return files, nil
}
