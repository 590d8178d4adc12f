package dbpf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// field identifies one of the eight deduplicatable index columns, in their
// on-disk bit and field order.
type field int

const (
	fieldResourceType field = iota
	fieldResourceGroup
	fieldInstanceHi
	fieldInstanceLo
	fieldChunkOffset
	fieldFileSize // packs unk1 in the high bit
	fieldMemSize
	fieldCompressed // packs unk2 in the high 16 bits
	fieldCount
)

// rawEntry holds the eight raw on-disk 32-bit columns for one index entry,
// before the filesize/compressed bitfields are split out.
type rawEntry [fieldCount]uint32

// indexEntry is one reconstructed index row, public field names matching
// the data model.
type indexEntry struct {
	ResourceType  uint32
	ResourceGroup uint32
	Instance      uint64
	ChunkOffset   uint32
	FileSize      uint32
	Unk1          bool
	MemSize       uint32
	Compressed    bool
	Unk2          uint16
}

func (e indexEntry) raw() rawEntry {
	fileSizeWord := e.FileSize & 0x7FFFFFFF
	if e.Unk1 {
		fileSizeWord |= 0x80000000
	}
	compressedWord := uint32(e.Unk2) << 16
	if e.Compressed {
		compressedWord |= 0xFFFF
	}
	return rawEntry{
		uint32(fieldResourceType):  e.ResourceType,
		uint32(fieldResourceGroup): e.ResourceGroup,
		uint32(fieldInstanceHi):    uint32(e.Instance >> 32),
		uint32(fieldInstanceLo):    uint32(e.Instance),
		uint32(fieldChunkOffset):   e.ChunkOffset,
		uint32(fieldFileSize):      fileSizeWord,
		uint32(fieldMemSize):       e.MemSize,
		uint32(fieldCompressed):    compressedWord,
	}
}

func entryFromRaw(r rawEntry) indexEntry {
	return indexEntry{
		ResourceType:  r[fieldResourceType],
		ResourceGroup: r[fieldResourceGroup],
		Instance:      uint64(r[fieldInstanceHi])<<32 | uint64(r[fieldInstanceLo]),
		ChunkOffset:   r[fieldChunkOffset],
		FileSize:      r[fieldFileSize] & 0x7FFFFFFF,
		Unk1:          r[fieldFileSize]&0x80000000 != 0,
		MemSize:       r[fieldMemSize],
		Compressed:    r[fieldCompressed]&0xFFFF == 0xFFFF,
		Unk2:          uint16(r[fieldCompressed] >> 16),
	}
}

// readIndex reads the mask, common template, and entryCount per-entry rows
// starting at the reader's current position.
func readIndex(r io.Reader, entryCount uint32) (uint32, []indexEntry, error) {
	var maskBuf [4]byte
	if _, err := io.ReadFull(r, maskBuf[:]); err != nil {
		return 0, nil, fmt.Errorf("%w: read index mask: %w", ErrTruncatedInput, err)
	}
	mask := binary.LittleEndian.Uint32(maskBuf[:])

	var common rawEntry
	for f := field(0); f < fieldCount; f++ {
		if mask&(1<<uint(f)) == 0 {
			continue
		}
		v, err := readUint32(r)
		if err != nil {
			return 0, nil, fmt.Errorf("read common field %d: %w", f, err)
		}
		common[f] = v
	}

	entries := make([]indexEntry, entryCount)
	for i := range entries {
		row := common
		for f := field(0); f < fieldCount; f++ {
			if mask&(1<<uint(f)) != 0 {
				continue
			}
			v, err := readUint32(r)
			if err != nil {
				return 0, nil, fmt.Errorf("read entry %d field %d: %w", i, f, err)
			}
			row[f] = v
		}
		entries[i] = entryFromRaw(row)
	}

	return mask, entries, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTruncatedInput, err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// indexSize returns the on-disk byte size of an index with k bits set in
// its mask and n entries: (1 + k + (8-k)*n) * 4.
func indexSize(mask uint32, n int) uint32 {
	k := popcount(mask)
	return uint32(1+k+(int(fieldCount)-k)*n) * 4
}

func popcount(mask uint32) int {
	count := 0
	for mask != 0 {
		count += int(mask & 1)
		mask >>= 1
	}
	return count
}

// foldCommonTemplate computes the write-path mask and common template by
// folding every entry's raw columns against a running candidate, starting
// from entry 0 and dropping any field that varies.
func foldCommonTemplate(entries []indexEntry) (uint32, rawEntry) {
	var common rawEntry
	if len(entries) == 0 {
		return 0, common
	}

	mask := uint32(1<<uint(fieldCount)) - 1
	common = entries[0].raw()
	for _, e := range entries[1:] {
		row := e.raw()
		for f := field(0); f < fieldCount; f++ {
			if mask&(1<<uint(f)) == 0 {
				continue
			}
			if row[f] != common[f] {
				mask &^= 1 << uint(f)
			}
		}
	}
	return mask, common
}

// writeIndex writes the mask, common template, and per-entry diffs for
// entries to w, using the write-path mask/template computed by
// foldCommonTemplate.
func writeIndex(w io.Writer, mask uint32, common rawEntry, entries []indexEntry) error {
	var maskBuf [4]byte
	binary.LittleEndian.PutUint32(maskBuf[:], mask)
	if _, err := w.Write(maskBuf[:]); err != nil {
		return fmt.Errorf("write index mask: %w", err)
	}

	for f := field(0); f < fieldCount; f++ {
		if mask&(1<<uint(f)) == 0 {
			continue
		}
		if err := writeUint32(w, common[f]); err != nil {
			return fmt.Errorf("write common field %d: %w", f, err)
		}
	}

	for i, e := range entries {
		row := e.raw()
		for f := field(0); f < fieldCount; f++ {
			if mask&(1<<uint(f)) != 0 {
				continue
			}
			if err := writeUint32(w, row[f]); err != nil {
				return fmt.Errorf("write entry %d field %d: %w", i, f, err)
			}
		}
	}

	return nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
