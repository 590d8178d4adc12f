package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path represents a parsed bundle path with optional internal path.
type Path struct {
	ArchivePath  string // Path to the ZIP/7z/RAR file
	InternalPath string // Path to a .package file inside it (empty when the path names only the bundle)
}

var archiveExtensions = []string{".zip", ".7z", ".rar"}

// ParsePath parses a path that may reference a .package file inside a
// bundle archive, e.g. "/path/to/bundle.zip/sub/mod.package".
//
// Returns:
//   - (*Path, nil) if the path contains a bundle reference
//   - (nil, nil) if the path is not a bundle reference
//   - (nil, error) if there was an error checking the path
//
//nolint:nilnil // nil,nil is documented "not a bundle path" behavior
func ParsePath(path string) (*Path, error) {
	normalizedPath := filepath.ToSlash(path)

	for _, ext := range archiveExtensions {
		pattern := ext + "/"
		idx := strings.Index(strings.ToLower(normalizedPath), pattern)
		if idx == -1 {
			continue
		}

		archivePath := path[:idx+len(ext)]
		internalPath := path[idx+len(ext)+1:]

		if _, err := os.Stat(archivePath); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("stat bundle %s: %w", archivePath, err)
		}

		return &Path{ArchivePath: archivePath, InternalPath: internalPath}, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if IsArchiveExtension(ext) {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("stat bundle %s: %w", path, err)
		}

		return &Path{ArchivePath: path, InternalPath: ""}, nil
	}

	return nil, nil
}

// IsBundlePath checks if a path references a bundle archive, without
// verifying the file exists.
func IsBundlePath(path string) bool {
	normalizedPath := filepath.ToSlash(path)

	for _, ext := range archiveExtensions {
		if strings.Contains(strings.ToLower(normalizedPath), ext+"/") {
			return true
		}
	}

	return IsArchiveExtension(strings.ToLower(filepath.Ext(path)))
}
