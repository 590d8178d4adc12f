// Command dump_package_pngs writes every PNG-bearing resource in a DBPF
// package to <instance:016X>.png in an output directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kitlith/sims3-dbpf/dbpf"
	"github.com/kitlith/sims3-dbpf/dbpf/filetypes"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <package> <dir>\n", os.Args[0])
		os.Exit(1)
	}
	packagePath, outDir := os.Args[1], os.Args[2]

	f, err := os.Open(packagePath) //nolint:gosec // user-provided path is expected
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening package: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	ctx, archive, err := dbpf.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing package: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil { //nolint:gosec // output directory is meant to be readable
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	written := 0
	for i := range archive.Entries {
		entry := &archive.Entries[i]
		if !filetypes.IsPNGResource(entry.ResourceType) {
			continue
		}

		reader, err := entry.Chunk.GetReader(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %016X: %v\n", entry.Instance, err)
			continue
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("%016X.png", entry.Instance))
		out, err := os.Create(outPath) //nolint:gosec // outPath is built from a hex instance, not user input
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outPath, err)
			continue
		}
		if _, err := io.Copy(out, reader); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
		}
		_ = out.Close()
		written++
	}

	fmt.Printf("Wrote %d PNG resource(s) to %s\n", written, outDir)
}
