package dbpf

import (
	"bytes"
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kitlith/sims3-dbpf/dbpf/refpack"
)

// decompressedCacheSize bounds the number of Compressed chunks whose
// decompressed bytes are memoised at once per ReaderContext.
const decompressedCacheSize = 64

// brand is a pointer-identity token. Two brands compare equal only when
// they are the same allocation, giving chunk handles a non-forgeable tie to
// the ReaderContext that produced them without a generic lifetime system.
type brand struct{}

// ReaderContext pairs a backing reader with the brand that every chunk
// handle parsed from it carries. Presenting a handle stamped with a
// different context's brand is a static contract violation, reported as
// ErrBrandMismatch at the point of use.
type ReaderContext struct {
	r     io.ReaderAt
	brand *brand
	cache *lru.Cache[uint32, []byte]
}

// newReaderContext wraps r in a fresh, uniquely branded context.
func newReaderContext(r io.ReaderAt) *ReaderContext {
	cache, err := lru.New[uint32, []byte](decompressedCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which is a
		// compile-time constant here.
		panic(err)
	}
	return &ReaderContext{r: r, brand: &brand{}, cache: cache}
}

// neverReaderContext returns a context whose reader always fails, paired
// with archives built from scratch via New (which hold only Dirty chunks
// and therefore never dereference it).
func neverReaderContext() *ReaderContext {
	return &ReaderContext{r: failingReaderAt{}, brand: &brand{}, cache: nil}
}

type failingReaderAt struct{}

func (failingReaderAt) ReadAt([]byte, int64) (int, error) {
	return 0, fmt.Errorf("dbpf: read from unbranded archive's never-reader context")
}

// chunkState tags which of the three handle shapes a Chunk currently is.
type chunkState int

const (
	stateUncompressed chunkState = iota
	stateCompressed
	stateDirty
)

// Chunk is a lazy, tagged-variant handle over one index entry's payload
// bytes: Uncompressed and Compressed variants are branded to the
// ReaderContext that parsed them; Dirty is self-sufficient.
type Chunk struct {
	state chunkState
	brand *brand // nil for Dirty

	// Uncompressed / Compressed
	offset   int64
	fileSize int64
	// Compressed only
	memSize  int64
	cacheKey uint32

	// Dirty only
	data           []byte
	shouldCompress bool
}

// newUncompressedChunk builds a Chunk backed directly by offset/filesize
// bytes in the reader tied to ctx.
func newUncompressedChunk(ctx *ReaderContext, offset, fileSize int64) *Chunk {
	return &Chunk{state: stateUncompressed, brand: ctx.brand, offset: offset, fileSize: fileSize}
}

// newCompressedChunk builds a Chunk backed by a RefPack stream at
// offset/filesize in the reader tied to ctx, decompressing to memSize bytes.
func newCompressedChunk(ctx *ReaderContext, offset, fileSize, memSize int64, cacheKey uint32) *Chunk {
	return &Chunk{
		state: stateCompressed, brand: ctx.brand,
		offset: offset, fileSize: fileSize, memSize: memSize, cacheKey: cacheKey,
	}
}

// NewDirtyChunk builds a self-sufficient Chunk over an owned, already
// decompressed buffer with no backing reader.
func NewDirtyChunk(data []byte, shouldCompress bool) *Chunk {
	return &Chunk{state: stateDirty, data: data, shouldCompress: shouldCompress}
}

// MemSize returns the decompressed length in bytes regardless of state.
func (c *Chunk) MemSize() int64 {
	switch c.state {
	case stateUncompressed:
		return c.fileSize
	case stateCompressed:
		return c.memSize
	case stateDirty:
		return int64(len(c.data))
	default:
		return 0
	}
}

// GetReader returns a seekable stream positioned at the start of the
// chunk's decompressed bytes. ctx is required (and brand-checked) for
// Uncompressed and Compressed chunks; it is ignored for Dirty chunks.
func (c *Chunk) GetReader(ctx *ReaderContext) (io.ReadSeeker, error) {
	switch c.state {
	case stateUncompressed:
		if err := c.checkBrand(ctx); err != nil {
			return nil, err
		}
		return io.NewSectionReader(ctx.r, c.offset, c.fileSize), nil

	case stateCompressed:
		if err := c.checkBrand(ctx); err != nil {
			return nil, err
		}
		if ctx.cache != nil {
			if cached, ok := ctx.cache.Get(c.cacheKey); ok {
				return bytes.NewReader(cached), nil
			}
		}
		raw := make([]byte, c.fileSize)
		if _, err := ctx.r.ReadAt(raw, c.offset); err != nil {
			return nil, fmt.Errorf("%w: read compressed bytes: %w", ErrCompressionFailed, err)
		}
		decompressed, err := refpack.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCompressionFailed, err)
		}
		if ctx.cache != nil {
			ctx.cache.Add(c.cacheKey, decompressed)
		}
		return bytes.NewReader(decompressed), nil

	case stateDirty:
		return bytes.NewReader(c.data), nil

	default:
		return nil, fmt.Errorf("dbpf: chunk in unknown state %d", c.state)
	}
}

func (c *Chunk) checkBrand(ctx *ReaderContext) error {
	if ctx == nil || c.brand != ctx.brand {
		return ErrBrandMismatch
	}
	return nil
}

// IsDirty reports whether the chunk holds an owned, uncommitted buffer.
func (c *Chunk) IsDirty() bool { return c.state == stateDirty }
