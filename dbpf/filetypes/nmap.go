package filetypes

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	lenbytes "github.com/kitlith/sims3-dbpf/internal/binary"
)

const nmapVersion = 1

// ParseNMAP decodes a Name Map chunk (32-bit version, 32-bit count, then
// count records of {u64 instance, length-prefixed UTF-8 name}) and merges
// its instance->name pairs into dst. resourceType must be NMAP; any other
// value is rejected with ErrWrongResourceType, mirroring the "assertion
// style error" the data model calls for. On a duplicate instance the new
// name wins; a warning is printed when the new name differs from the old.
func ParseNMAP(resourceType uint32, r io.Reader, dst map[uint64]string) error {
	if resourceType != NMAP {
		return fmt.Errorf("%w: type 0x%08X", ErrWrongResourceType, resourceType)
	}

	var version, count uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("read nmap version: %w", err)
	}
	if version != nmapVersion {
		return fmt.Errorf("%w: %d", ErrBadVersion, version)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("read nmap count: %w", err)
	}

	for i := uint32(0); i < count; i++ {
		var instance uint64
		if err := binary.Read(r, binary.LittleEndian, &instance); err != nil {
			return fmt.Errorf("read nmap record %d instance: %w", i, err)
		}
		nameBytes, err := lenbytes.ReadLengthPrefixedBytes(r)
		if err != nil {
			return fmt.Errorf("read nmap record %d name: %w", i, err)
		}
		name := strings.ToValidUTF8(string(nameBytes), "�")

		if existing, ok := dst[instance]; ok && existing != name {
			fmt.Fprintf(os.Stderr, "nmap: instance %016X name %q overwritten by %q\n", instance, existing, name)
		}
		dst[instance] = name
	}

	return nil
}
