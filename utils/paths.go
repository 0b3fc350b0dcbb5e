package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveDocumentPath joins a relative path onto baseDir and checks that the
// result names a regular file. Absolute paths are used as given.
func ResolveDocumentPath(baseDir, p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(baseDir, p)
	}
	p = filepath.Clean(p)
	if !FileExists(p) {
		return "", fmt.Errorf("document %s does not exist or is not a regular file", p)
	}
	return p, nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
