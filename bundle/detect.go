package bundle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// IsPackageFile checks if a filename has the .package extension.
func IsPackageFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".package")
}

// ListPackages returns the internal paths of every .package file in the
// bundle archive, in the order List reports them.
func ListPackages(arc Archive) ([]string, error) {
	files, err := arc.List()
	if err != nil {
		return nil, fmt.Errorf("list bundle files: %w", err)
	}

	var packages []string
	for _, file := range files {
		if IsPackageFile(file.Name) {
			packages = append(packages, file.Name)
		}
	}

	if len(packages) == 0 {
		return nil, NoPackagesError{Archive: "bundle"}
	}

	return packages, nil
}
