// Command find_merged_cc reports which package files under one or more
// directories share custom-content resources with a merged package.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kitlith/sims3-dbpf/bundle"
	"github.com/kitlith/sims3-dbpf/dbpf"
	"github.com/kitlith/sims3-dbpf/dbpf/filetypes"
)

// tgi is the (resource_type, resource_group, instance) identity of a
// resource, used as a map key.
type tgi struct {
	resourceType, resourceGroup uint32
	instance                    uint64
}

// ccTypes are the resource types that make a package "custom content" for
// the purposes of merge detection. XMLResource is only included under the
// merged policy: a merged package's XML resources are legitimately shared
// across many standalone packages and would otherwise swamp the overlap
// with false positives.
var ccTypes = []uint32{filetypes.CASP, filetypes.FACE, filetypes.SkinTone, filetypes.OBJD}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <merged> <dir>...\n", os.Args[0])
		os.Exit(1)
	}
	mergedPath := os.Args[1]
	dirs := os.Args[2:]

	mergedSet, err := tgiSetFromPath(mergedPath, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading merged package %s: %v\n", mergedPath, err)
		os.Exit(1)
	}
	if len(mergedSet) == 0 {
		fmt.Fprintf(os.Stderr, "No custom-content resources found in %s\n", mergedPath)
		os.Exit(1)
	}

	for _, dir := range dirs {
		if err := scanDir(dir, mergedSet); err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", dir, err)
		}
	}
}

func scanDir(dir string, mergedSet map[tgi]struct{}) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
			return nil
		}
		ext := filepath.Ext(path)
		if d.IsDir() || !(strings.EqualFold(ext, ".package") || bundle.IsArchiveExtension(ext)) {
			return nil
		}

		set, err := tgiSetFromPath(path, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
			return nil
		}
		if intersects(mergedSet, set) {
			fmt.Println(path)
		}
		return nil
	})
}

// tgiSetFromPath loads the resource TGI set for one package file, applying
// the merged or non-merged custom-content policy. path may also name a
// bundle archive (.zip/.7z/.rar): every .package file inside it is unioned
// into the returned set.
func tgiSetFromPath(path string, merged bool) (map[tgi]struct{}, error) {
	if bundle.IsBundlePath(path) {
		return tgiSetFromBundle(path, merged)
	}

	f, err := os.Open(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	_, archive, err := dbpf.Parse(f)
	if err != nil {
		return nil, err
	}
	return tgiSetFromArchive(archive, merged), nil
}

func tgiSetFromBundle(path string, merged bool) (map[tgi]struct{}, error) {
	arc, err := bundle.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = arc.Close() }()

	packages, err := bundle.ListPackages(arc)
	if err != nil {
		return nil, err
	}

	set := make(map[tgi]struct{})
	for _, name := range packages {
		r, _, closer, err := arc.OpenReaderAt(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s in %s: %v\n", name, path, err)
			continue
		}
		_, inner, err := dbpf.Parse(r)
		_ = closer.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s in %s: %v\n", name, path, err)
			continue
		}
		for k := range tgiSetFromArchive(inner, merged) {
			set[k] = struct{}{}
		}
	}
	return set, nil
}

// tgiSetFromArchive collects the custom-content TGI set for a package. If
// the CC-typed set (plus XMLResource when merged) comes up empty, every
// XMLResource entry is returned instead regardless of the merged flag: a
// package with nothing else distinctive is still worth comparing by its
// pattern/XML resources.
func tgiSetFromArchive(archive *dbpf.Archive, merged bool) map[tgi]struct{} {
	set := make(map[tgi]struct{})
	for i := range archive.Entries {
		e := &archive.Entries[i]
		if !isCCType(e.ResourceType, merged) {
			continue
		}
		set[tgi{e.ResourceType, e.ResourceGroup, e.Instance}] = struct{}{}
	}
	if len(set) > 0 {
		return set
	}

	for i := range archive.Entries {
		e := &archive.Entries[i]
		if e.ResourceType != filetypes.XMLResource {
			continue
		}
		set[tgi{e.ResourceType, e.ResourceGroup, e.Instance}] = struct{}{}
	}
	return set
}

func isCCType(resourceType uint32, merged bool) bool {
	if merged && resourceType == filetypes.XMLResource {
		return true
	}
	for _, t := range ccTypes {
		if resourceType == t {
			return true
		}
	}
	return false
}

func intersects(a, b map[tgi]struct{}) bool {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	for k := range small {
		if _, ok := big[k]; ok {
			return true
		}
	}
	return false
}
