package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// markers identify a project root, checked in order at each directory level.
var markers = []string{"pyproject.toml", ".git"}

// Locate returns the project root for the given candidate paths: the nearest
// ancestor of their common base directory containing one of the root
// markers. The filesystem root is returned when no marker is found.
//
// Locate is deterministic and reads nothing beyond directory metadata.
func Locate(paths []string) (string, error) {
	base, err := commonBase(paths)
	if err != nil {
		return "", err
	}

	for dir := base; ; {
		for _, m := range markers {
			if _, err := os.Lstat(filepath.Join(dir, m)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir, nil
		}
		dir = parent
	}
}

// commonBase resolves each candidate to an absolute directory (files count
// as their parent directory) and returns the deepest directory containing
// all of them.
func commonBase(paths []string) (string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	abs := make([]string, len(paths))
	for i, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", p, err)
		}
		if info, err := os.Stat(a); err == nil && !info.IsDir() {
			a = filepath.Dir(a)
		}
		abs[i] = a
	}

	base := abs[0]
	for _, p := range abs[1:] {
		for !contains(base, p) {
			parent := filepath.Dir(base)
			if parent == base {
				break
			}
			base = parent
		}
	}
	return base, nil
}

// contains reports whether path is dir itself or lies beneath it.
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
