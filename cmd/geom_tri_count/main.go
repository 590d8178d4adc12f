// Command geom_tri_count prints the dominant submesh's triangle count for
// every GEOM resource found in one or more package files or directories.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kitlith/sims3-dbpf/dbpf"
	"github.com/kitlith/sims3-dbpf/dbpf/filetypes"
	"github.com/kitlith/sims3-dbpf/dbpf/geom"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <package/dir>...\n", os.Args[0])
		os.Exit(1)
	}

	for _, root := range os.Args[1:] {
		if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
				return nil
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".package") {
				return nil
			}
			if err := processPackage(path); err != nil {
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
			}
			return nil
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error walking %s: %v\n", root, err)
		}
	}
}

// processPackage prints one line per GEOM resource: the package path and
// the dominant (highest-triangle-count) submesh's polygon count.
func processPackage(path string) error {
	f, err := os.Open(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	ctx, archive, err := dbpf.Parse(f)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	for _, entry := range archive.ByType(filetypes.GEOM) {
		r, err := entry.Chunk.GetReader(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %016X: %v\n", path, entry.Instance, err)
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %016X: %v\n", path, entry.Instance, err)
			continue
		}
		result, err := geom.Parse(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %016X: %v\n", path, entry.Instance, err)
			continue
		}
		fmt.Printf("%s %016X: %d triangles\n", path, entry.Instance, dominantTriangleCount(result))
	}
	return nil
}

// dominantTriangleCount returns the triangle count of the submesh with the
// most indices: multi-LOD GEOM chunks carry several submeshes, and the
// highest-detail one is the one worth reporting.
func dominantTriangleCount(r geom.Result) int {
	best := 0
	for _, sm := range r.SubMeshes {
		if tris := int(sm.IndexCount) / 3; tris > best {
			best = tris
		}
	}
	return best
}
