package filetypes_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/kitlith/sims3-dbpf/dbpf/filetypes"
)

func writeNMAPRecord(buf *bytes.Buffer, instance uint64, name string) {
	_ = binary.Write(buf, binary.LittleEndian, instance)
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(name)))
	buf.WriteString(name)
}

func TestParseNMAPTwoEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(1)) // version
	_ = binary.Write(&buf, binary.LittleEndian, uint32(2)) // count
	writeNMAPRecord(&buf, 0x1, "mesh_a")
	writeNMAPRecord(&buf, 0x2, "mesh_b")

	dst := make(map[uint64]string)
	if err := filetypes.ParseNMAP(filetypes.NMAP, &buf, dst); err != nil {
		t.Fatalf("ParseNMAP() error = %v", err)
	}

	want := map[uint64]string{0x1: "mesh_a", 0x2: "mesh_b"}
	if len(dst) != len(want) {
		t.Fatalf("ParseNMAP() = %v, want %v", dst, want)
	}
	for k, v := range want {
		if dst[k] != v {
			t.Errorf("dst[%#x] = %q, want %q", k, dst[k], v)
		}
	}
}

func TestParseNMAPDuplicateLastWriteWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(2))
	writeNMAPRecord(&buf, 0x1, "first")
	writeNMAPRecord(&buf, 0x1, "second")

	dst := make(map[uint64]string)
	if err := filetypes.ParseNMAP(filetypes.NMAP, &buf, dst); err != nil {
		t.Fatalf("ParseNMAP() error = %v", err)
	}
	if dst[0x1] != "second" {
		t.Errorf("dst[0x1] = %q, want %q", dst[0x1], "second")
	}
}

func TestParseNMAPWrongResourceType(t *testing.T) {
	t.Parallel()

	if err := filetypes.ParseNMAP(filetypes.GEOM, bytes.NewReader(nil), map[uint64]string{}); !errors.Is(err, filetypes.ErrWrongResourceType) {
		t.Errorf("ParseNMAP() error = %v, want ErrWrongResourceType", err)
	}
}

func TestParseNMAPBadVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))

	if err := filetypes.ParseNMAP(filetypes.NMAP, &buf, map[uint64]string{}); !errors.Is(err, filetypes.ErrBadVersion) {
		t.Errorf("ParseNMAP() error = %v, want ErrBadVersion", err)
	}
}

func TestParseNMAPInvalidUTF8IsLossy(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint64(0x99))
	badName := []byte{'o', 'k', 0xFF, 0xFE}
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(badName)))
	buf.Write(badName)

	dst := make(map[uint64]string)
	if err := filetypes.ParseNMAP(filetypes.NMAP, &buf, dst); err != nil {
		t.Fatalf("ParseNMAP() error = %v", err)
	}
	if !bytes.Contains([]byte(dst[0x99]), []byte("�")) {
		t.Errorf("dst[0x99] = %q, want replacement character for invalid UTF-8", dst[0x99])
	}
}
