package dbpf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/kitlith/sims3-dbpf/dbpf/filetypes"
)

func newByteReaderAt(b []byte) io.ReaderAt {
	return bytes.NewReader(b)
}

func TestWriteParseEmptyArchive(t *testing.T) {
	t.Parallel()

	ctx, archive := New()
	var buf bytes.Buffer
	if err := archive.Write(&buf, ctx); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	_, got, err := Parse(newByteReaderAt(buf.Bytes()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got.Entries) != 0 {
		t.Errorf("Parse() = %d entries, want 0", len(got.Entries))
	}
}

func TestWriteParseSingleUncompressedEntry(t *testing.T) {
	t.Parallel()

	ctx, archive := New()
	payload := []byte("hello, sims")
	archive.Entries = append(archive.Entries, Entry{
		ResourceType:  filetypes.GEOM,
		ResourceGroup: 0,
		Instance:      0x1,
		Chunk:         NewDirtyChunk(payload, false),
	})

	var buf bytes.Buffer
	if err := archive.Write(&buf, ctx); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	readCtx, got, err := Parse(newByteReaderAt(buf.Bytes()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got.Entries) != 1 {
		t.Fatalf("Parse() = %d entries, want 1", len(got.Entries))
	}

	entry := got.Entries[0]
	if entry.ResourceType != filetypes.GEOM || entry.Instance != 0x1 {
		t.Errorf("entry = %+v, want type GEOM instance 0x1", entry)
	}

	r, err := entry.Chunk.GetReader(readCtx)
	if err != nil {
		t.Fatalf("GetReader() error = %v", err)
	}
	got2, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got2, payload) {
		t.Errorf("read payload = %q, want %q", got2, payload)
	}
}

func TestFindAndByType(t *testing.T) {
	t.Parallel()

	ctx, archive := New()
	archive.Entries = []Entry{
		{ResourceType: filetypes.CASP, ResourceGroup: 0, Instance: 1, Chunk: NewDirtyChunk([]byte("a"), false)},
		{ResourceType: filetypes.CASP, ResourceGroup: 0, Instance: 2, Chunk: NewDirtyChunk([]byte("b"), false)},
		{ResourceType: filetypes.OBJD, ResourceGroup: 0, Instance: 3, Chunk: NewDirtyChunk([]byte("c"), false)},
	}
	_ = ctx

	if entry, ok := archive.Find(filetypes.OBJD, 0, 3); !ok || entry.Instance != 3 {
		t.Errorf("Find() = (%+v, %v), want instance 3", entry, ok)
	}
	if _, ok := archive.Find(filetypes.OBJD, 0, 999); ok {
		t.Error("Find() found a nonexistent entry")
	}
	if got := archive.ByType(filetypes.CASP); len(got) != 2 {
		t.Errorf("ByType(CASP) = %d entries, want 2", len(got))
	}
}

func TestGatherNamesIdempotent(t *testing.T) {
	t.Parallel()

	ctx, archive := New()
	archive.Entries = []Entry{
		{ResourceType: filetypes.NMAP, Chunk: NewDirtyChunk(buildNMAPChunk(t, map[uint64]string{1: "alpha", 2: "beta"}), false)},
	}

	first, err := archive.GatherNames(ctx)
	if err != nil {
		t.Fatalf("GatherNames() error = %v", err)
	}
	second, err := archive.GatherNames(ctx)
	if err != nil {
		t.Fatalf("GatherNames() error = %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("GatherNames() not idempotent: %d vs %d entries", first.Len(), second.Len())
	}
	for _, e := range first.Entries() {
		got, ok := second.Lookup(e.Instance)
		if !ok || got != e.Name {
			t.Errorf("second.Lookup(%#x) = (%q, %v), want (%q, true)", e.Instance, got, ok, e.Name)
		}
	}
}

func TestChunkBrandMismatch(t *testing.T) {
	t.Parallel()

	ctx1, archive := New()
	archive.Entries = append(archive.Entries, Entry{
		ResourceType: filetypes.GEOM,
		Instance:     1,
		Chunk:        NewDirtyChunk([]byte("payload"), false),
	})
	var buf bytes.Buffer
	if err := archive.Write(&buf, ctx1); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	ctx2, parsed, err := Parse(newByteReaderAt(buf.Bytes()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	_ = ctx2

	otherCtx, _, err := Parse(newByteReaderAt(buf.Bytes()))
	if err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}

	if _, err := parsed.Entries[0].Chunk.GetReader(otherCtx); !errors.Is(err, ErrBrandMismatch) {
		t.Errorf("GetReader() with foreign context error = %v, want ErrBrandMismatch", err)
	}
}

// buildNMAPChunk assembles a minimal NMAP chunk byte buffer from a
// instance->name map, in ascending instance order for determinism.
func buildNMAPChunk(t *testing.T, names map[uint64]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(names)))
	for k := uint64(0); k < 1<<8; k++ {
		name, ok := names[k]
		if !ok {
			continue
		}
		_ = binary.Write(&buf, binary.LittleEndian, k)
		_ = binary.Write(&buf, binary.LittleEndian, uint32(len(name)))
		buf.WriteString(name)
	}
	return buf.Bytes()
}
