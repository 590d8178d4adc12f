// Package geom parses the fixed-layout prefix of a GEOM chunk far enough to
// count vertices and triangles per submesh, demonstrating a domain parser
// built on the chunk reader contract.
package geom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	lenbytes "github.com/kitlith/sims3-dbpf/internal/binary"
)

var magic = []byte("GEOM")

// SubMesh is one entry of a GEOM chunk's item table.
type SubMesh struct {
	IndexCount uint32
}

// Result is the parsed subset of a GEOM chunk needed for a triangle count.
type Result struct {
	VertexCount uint32
	SubMeshes   []SubMesh
}

// TriangleCount sums IndexCount across every submesh and divides by 3: each
// submesh's index buffer is a flat list of triangle corner indices.
func (r Result) TriangleCount() int {
	total := 0
	for _, s := range r.SubMeshes {
		total += int(s.IndexCount)
	}
	return total / 3
}

// Parse decodes a GEOM chunk's buffer far enough to reach its SubMesh item
// table, skipping the vertex buffer and any embedded MTNF material block
// without decoding them.
func Parse(data []byte) (Result, error) {
	idx := lenbytes.FindBytes(data, magic)
	if idx < 0 {
		return Result{}, ErrBadMagic
	}
	r := bytes.NewReader(data[idx+len(magic):])

	if _, err := readU32(r); err != nil { // version
		return Result{}, fmt.Errorf("read version: %w", err)
	}
	if _, err := readU32(r); err != nil { // tgi_table_offset
		return Result{}, fmt.Errorf("read tgi table offset: %w", err)
	}
	if _, err := readU32(r); err != nil { // tgi_table_size
		return Result{}, fmt.Errorf("read tgi table size: %w", err)
	}

	embeddedMaterialID, err := readU32(r)
	if err != nil {
		return Result{}, fmt.Errorf("read embedded material id: %w", err)
	}
	if embeddedMaterialID != 0 {
		mtnfSize, err := readU32(r)
		if err != nil {
			return Result{}, fmt.Errorf("read mtnf size: %w", err)
		}
		if _, err := io.CopyN(io.Discard, r, int64(mtnfSize)); err != nil {
			return Result{}, fmt.Errorf("skip mtnf block: %w", err)
		}
	}

	if _, err := readU32(r); err != nil { // merge_group
		return Result{}, fmt.Errorf("read merge group: %w", err)
	}
	if _, err := readU32(r); err != nil { // sort_order
		return Result{}, fmt.Errorf("read sort order: %w", err)
	}

	vertexCount, err := readU32(r)
	if err != nil {
		return Result{}, fmt.Errorf("read vertex count: %w", err)
	}
	vertexAttribCount, err := readU32(r)
	if err != nil {
		return Result{}, fmt.Errorf("read vertex attrib count: %w", err)
	}

	var vertexBytesPerVertex uint32
	for i := uint32(0); i < vertexAttribCount; i++ {
		if _, err := readU32(r); err != nil { // data_type
			return Result{}, fmt.Errorf("read vertex attrib %d data type: %w", i, err)
		}
		if _, err := readU32(r); err != nil { // sub_type
			return Result{}, fmt.Errorf("read vertex attrib %d sub type: %w", i, err)
		}
		attribBytes, err := r.ReadByte()
		if err != nil {
			return Result{}, fmt.Errorf("read vertex attrib %d byte width: %w", i, err)
		}
		vertexBytesPerVertex += uint32(attribBytes)
	}

	vertexBufferBytes := int64(vertexBytesPerVertex) * int64(vertexCount)
	if _, err := io.CopyN(io.Discard, r, vertexBufferBytes); err != nil {
		return Result{}, fmt.Errorf("skip vertex buffer: %w", err)
	}

	itemCount, err := readU32(r)
	if err != nil {
		return Result{}, fmt.Errorf("read item count: %w", err)
	}

	subMeshes := make([]SubMesh, itemCount)
	for i := uint32(0); i < itemCount; i++ {
		indexSize, err := r.ReadByte()
		if err != nil {
			return Result{}, fmt.Errorf("read submesh %d index size: %w", i, err)
		}
		indexCount, err := readU32(r)
		if err != nil {
			return Result{}, fmt.Errorf("read submesh %d index count: %w", i, err)
		}
		indexBufferBytes := int64(indexSize) * int64(indexCount)
		if _, err := io.CopyN(io.Discard, r, indexBufferBytes); err != nil {
			return Result{}, fmt.Errorf("skip submesh %d index buffer: %w", i, err)
		}
		subMeshes[i] = SubMesh{IndexCount: indexCount}
	}

	return Result{VertexCount: vertexCount, SubMeshes: subMeshes}, nil
}

func readU32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}
