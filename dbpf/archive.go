package dbpf

import (
	"fmt"
	"io"

	"github.com/kitlith/sims3-dbpf/dbpf/filetypes"
)

// Entry is one resource in an archive: its (type, group, instance)
// identity plus a lazy handle to its bytes.
type Entry struct {
	ResourceType  uint32
	ResourceGroup uint32
	Instance      uint64
	Unk1          bool
	Unk2          uint16
	Chunk         *Chunk
}

// Archive holds an ordered sequence of entries plus the archive-level
// header fields that are not index data.
type Archive struct {
	Flags    uint32
	Created  uint32
	Modified uint32
	Entries  []Entry
}

// New returns an empty, writable archive paired with a never-reader
// context: its entries are constructed with NewDirtyChunk and never need a
// backing reader.
func New() (*ReaderContext, *Archive) {
	return neverReaderContext(), &Archive{}
}

// Parse reads a complete DBPF archive's header and index from r (but never
// its chunk bytes; decompression happens lazily at Chunk.GetReader) and
// returns a ReaderContext branding every Uncompressed/Compressed chunk it
// produces.
func Parse(r io.ReaderAt) (*ReaderContext, *Archive, error) {
	hdr, err := parseHeader(io.NewSectionReader(r, 0, headerSize))
	if err != nil {
		return nil, nil, err
	}

	indexReader := io.NewSectionReader(r, int64(hdr.IndexPosition), int64(hdr.IndexSize))
	mask, rows, err := readIndex(indexReader, hdr.EntryCount)
	if err != nil {
		return nil, nil, err
	}
	if want := indexSize(mask, len(rows)); want != hdr.IndexSize {
		return nil, nil, fmt.Errorf("%w: header declares %d, mask/count imply %d", ErrIndexMismatch, hdr.IndexSize, want)
	}

	ctx := newReaderContext(r)
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		if row.FileSize > MaxChunkSize || row.MemSize > MaxChunkSize {
			return nil, nil, fmt.Errorf("%w: entry %d filesize %d memsize %d", ErrLimitExceeded, i, row.FileSize, row.MemSize)
		}
		var chunk *Chunk
		if row.Compressed {
			chunk = newCompressedChunk(ctx, int64(row.ChunkOffset), int64(row.FileSize), int64(row.MemSize), uint32(i))
		} else {
			chunk = newUncompressedChunk(ctx, int64(row.ChunkOffset), int64(row.FileSize))
		}
		entries[i] = Entry{
			ResourceType:  row.ResourceType,
			ResourceGroup: row.ResourceGroup,
			Instance:      row.Instance,
			Unk1:          row.Unk1,
			Unk2:          row.Unk2,
			Chunk:         chunk,
		}
	}

	return ctx, &Archive{Flags: hdr.Flags, Created: hdr.Created, Modified: hdr.Modified, Entries: entries}, nil
}

// Find returns the first entry matching resourceType/resourceGroup/instance.
func (a *Archive) Find(resourceType, resourceGroup uint32, instance uint64) (*Entry, bool) {
	for i := range a.Entries {
		e := &a.Entries[i]
		if e.ResourceType == resourceType && e.ResourceGroup == resourceGroup && e.Instance == instance {
			return e, true
		}
	}
	return nil, false
}

// ByType returns every entry whose ResourceType matches, in file order.
func (a *Archive) ByType(resourceType uint32) []*Entry {
	var out []*Entry
	for i := range a.Entries {
		if a.Entries[i].ResourceType == resourceType {
			out = append(out, &a.Entries[i])
		}
	}
	return out
}

// GatherNames decodes every NMAP entry in the archive and aggregates their
// instance->name pairs, last-write-wins on duplicates across maps.
func (a *Archive) GatherNames(ctx *ReaderContext) (*NameMap, error) {
	names := make(map[uint64]string)
	for i := range a.Entries {
		e := &a.Entries[i]
		if e.ResourceType != filetypes.NMAP {
			continue
		}
		r, err := e.Chunk.GetReader(ctx)
		if err != nil {
			return nil, fmt.Errorf("open nmap chunk %d:%d:%016X: %w", e.ResourceType, e.ResourceGroup, e.Instance, err)
		}
		if err := filetypes.ParseNMAP(e.ResourceType, r, names); err != nil {
			return nil, fmt.Errorf("parse nmap chunk %d:%d:%016X: %w", e.ResourceType, e.ResourceGroup, e.Instance, err)
		}
	}
	return &NameMap{byInstance: names}, nil
}

// Write serializes the archive: header with a freshly computed index
// layout, the bitmasked index, then every entry's decompressed-or-owned
// bytes in file order. Compressed chunks are read back via ctx and written
// out uncompressed; this module never writes RefPack streams.
func (a *Archive) Write(w io.Writer, ctx *ReaderContext) error {
	internalEntries := make([]indexEntry, len(a.Entries))
	payloads := make([][]byte, len(a.Entries))

	// Lay entries out relative to a placeholder base of 0 first: whether
	// chunk_offset ends up common to the mask depends only on whether
	// offsets differ from each other, which a uniform shift never changes.
	// This breaks the chicken-and-egg between "offsets depend on index
	// size" and "index size depends on which fields are common".
	var placeholderOffset int64
	for i := range a.Entries {
		e := &a.Entries[i]
		r, err := e.Chunk.GetReader(ctx)
		if err != nil {
			return fmt.Errorf("read entry %d: %w", i, err)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read entry %d bytes: %w", i, err)
		}
		payloads[i] = data

		internalEntries[i] = indexEntry{
			ResourceType:  e.ResourceType,
			ResourceGroup: e.ResourceGroup,
			Instance:      e.Instance,
			ChunkOffset:   uint32(placeholderOffset), //nolint:gosec // bounded by MaxChunkSize-scale archives
			FileSize:      uint32(len(data)),         //nolint:gosec // bounded by MaxChunkSize-scale archives
			Unk1:          e.Unk1,
			MemSize:       uint32(len(data)), //nolint:gosec // bounded by MaxChunkSize-scale archives
			Compressed:    false,
			Unk2:          e.Unk2,
		}
		placeholderOffset += int64(len(data))
	}

	mask, _ := foldCommonTemplate(internalEntries)
	idxSize := indexSize(mask, len(internalEntries))
	shift := uint32(headerSize) + idxSize //nolint:gosec // idxSize is bounded by MaxIndexSize
	for i := range internalEntries {
		internalEntries[i].ChunkOffset += shift
	}
	mask, common := foldCommonTemplate(internalEntries)

	hdr := &Header{
		Flags:         a.Flags,
		Created:       a.Created,
		Modified:      a.Modified,
		EntryCount:    uint32(len(internalEntries)), //nolint:gosec // bounded by MaxEntryCount
		IndexSize:     idxSize,
		IndexPosition: headerSize,
	}
	if err := writeHeader(w, hdr); err != nil {
		return err
	}
	if err := writeIndex(w, mask, common, internalEntries); err != nil {
		return err
	}
	for i, data := range payloads {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write entry %d bytes: %w", i, err)
		}
	}
	return nil
}
