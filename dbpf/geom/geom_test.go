package geom_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/kitlith/sims3-dbpf/dbpf/geom"
)

type submeshSpec struct {
	indexSize  uint8
	indexCount uint32
}

func buildGEOMChunk(t *testing.T, vertexCount uint32, attribBytes []uint8, submeshes []submeshSpec) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("GEOM")
	w := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	w(uint32(5))             // version
	w(uint32(0))             // tgi_table_offset
	w(uint32(0))             // tgi_table_size
	w(uint32(0))             // embedded_material_id (0: no MTNF block)
	w(uint32(0))             // merge_group
	w(uint32(0))             // sort_order
	w(vertexCount)           // vertex_count
	w(uint32(len(attribBytes))) // vertex_attrib_count

	var bytesPerVertex uint32
	for _, b := range attribBytes {
		w(uint32(0)) // data_type
		w(uint32(0)) // sub_type
		w(b)
		bytesPerVertex += uint32(b)
	}
	buf.Write(make([]byte, bytesPerVertex*vertexCount)) // vertex buffer

	w(uint32(len(submeshes))) // item_count
	for _, sm := range submeshes {
		w(sm.indexSize)
		w(sm.indexCount)
		buf.Write(make([]byte, uint32(sm.indexSize)*sm.indexCount)) // index buffer
	}

	return buf.Bytes()
}

func TestParseAndTriangleCount(t *testing.T) {
	t.Parallel()

	data := buildGEOMChunk(t, 4, []uint8{12}, []submeshSpec{
		{indexSize: 2, indexCount: 6},
		{indexSize: 2, indexCount: 9},
	})

	result, err := geom.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.VertexCount != 4 {
		t.Errorf("VertexCount = %d, want 4", result.VertexCount)
	}
	if len(result.SubMeshes) != 2 {
		t.Fatalf("len(SubMeshes) = %d, want 2", len(result.SubMeshes))
	}
	if got, want := result.TriangleCount(), 5; got != want {
		t.Errorf("TriangleCount() = %d, want %d", got, want)
	}
}

func TestParseFindsMagicWithPrecedingBytes(t *testing.T) {
	t.Parallel()

	chunk := buildGEOMChunk(t, 0, nil, nil)
	data := append([]byte{0xDE, 0xAD, 0xBE, 0xEF}, chunk...)

	result, err := geom.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.VertexCount != 0 || len(result.SubMeshes) != 0 {
		t.Errorf("Parse() = %+v, want empty result", result)
	}
}

func TestParseBadMagic(t *testing.T) {
	t.Parallel()

	if _, err := geom.Parse([]byte("not a geom chunk")); !errors.Is(err, geom.ErrBadMagic) {
		t.Errorf("Parse() error = %v, want ErrBadMagic", err)
	}
}

func TestTriangleCountEmpty(t *testing.T) {
	t.Parallel()

	var r geom.Result
	if got := r.TriangleCount(); got != 0 {
		t.Errorf("TriangleCount() = %d, want 0", got)
	}
}
