// Command package_names renames a DBPF package to the name of one of its
// representative resources, as recorded in its own NMAP name map.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kitlith/sims3-dbpf/dbpf"
	"github.com/kitlith/sims3-dbpf/dbpf/filetypes"
)

// representativeTypes are checked in priority order: the first entry whose
// instance is present in the gathered name map wins.
var representativeTypes = []uint32{filetypes.CASP, filetypes.OBJD, filetypes.NMAP, filetypes.PackageNameHint}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <package>\n", os.Args[0])
		os.Exit(1)
	}
	packagePath := os.Args[1]

	f, err := os.Open(packagePath) //nolint:gosec // user-provided path is expected
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening package: %v\n", err)
		os.Exit(1)
	}

	ctx, archive, err := dbpf.Parse(f)
	if err != nil {
		_ = f.Close()
		fmt.Fprintf(os.Stderr, "Error parsing package: %v\n", err)
		os.Exit(1)
	}

	names, err := archive.GatherNames(ctx)
	if err != nil {
		_ = f.Close()
		fmt.Fprintf(os.Stderr, "Error gathering names: %v\n", err)
		os.Exit(1)
	}
	_ = f.Close()

	name, ok := findRepresentativeName(archive, names)
	if !ok {
		fmt.Fprintf(os.Stderr, "No named representative resource found in %s\n", packagePath)
		os.Exit(1)
	}

	targetPath := filepath.Join(filepath.Dir(packagePath), name+".package")
	if _, err := os.Stat(targetPath); err == nil {
		fmt.Fprintf(os.Stderr, "Target %s already exists, not renaming\n", targetPath)
		os.Exit(1)
	}

	if err := os.Rename(packagePath, targetPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming package: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s -> %s\n", packagePath, targetPath)
}

func findRepresentativeName(archive *dbpf.Archive, names *dbpf.NameMap) (string, bool) {
	for _, t := range representativeTypes {
		for _, entry := range archive.ByType(t) {
			if name, ok := names.Lookup(entry.Instance); ok {
				return name, true
			}
		}
	}
	return "", false
}
