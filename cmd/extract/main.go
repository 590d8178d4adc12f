// Command extract copies one resource's decompressed bytes out of a DBPF
// package to a file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kitlith/sims3-dbpf/dbpf"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <package> <type:group:instance> <output>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extracts one resource's decompressed bytes from a DBPF package.\n\n")
		fmt.Fprintf(os.Stderr, "Example:\n")
		fmt.Fprintf(os.Stderr, "  %s mod.package 015A1849:00000000:0000000000000001 mesh.bin\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	packagePath, tgi, outputPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	resourceType, resourceGroup, instance, err := parseTGI(tgi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	entry, ok := archive.Find(resourceType, resourceGroup, instance)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no resource %s in %s\n", tgi, packagePath)
		os.Exit(1)
	}

	reader, err := entry.Chunk.GetReader(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading resource: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outputPath) //nolint:gosec // user-provided path is expected
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, reader); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
}

// parseTGI parses a "type:group:instance" triple of hex fields.
func parseTGI(s string) (resourceType, resourceGroup uint32, instance uint64, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid T:G:I %q: expected three colon-separated hex fields", s)
	}

	t, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid resource type %q: %w", parts[0], err)
	}
	g, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid resource group %q: %w", parts[1], err)
	}
	i, err := strconv.ParseUint(parts[2], 16, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid instance %q: %w", parts[2], err)
	}

	return uint32(t), uint32(g), i, nil //nolint:gosec // ParseUint bitSize=32 bounds these
}
