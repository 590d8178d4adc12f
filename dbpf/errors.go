package dbpf

import "errors"

// Allocation limits to prevent DoS from malicious DBPF archives.
const (
	// MaxEntryCount is the maximum number of index entries accepted on parse.
	MaxEntryCount = 10_000_000

	// MaxIndexSize is the maximum index byte size accepted on parse (256MB).
	MaxIndexSize = 256 * 1024 * 1024

	// MaxChunkSize is the maximum on-disk or decompressed chunk size accepted
	// from a declared filesize/memsize field (1GB).
	MaxChunkSize = 1024 * 1024 * 1024
)

// Common errors for DBPF archive parsing.
var (
	// ErrBadMagic indicates the file does not start with the DBPF magic.
	ErrBadMagic = errors.New("dbpf: bad magic, expected \"DBPF\"")

	// ErrBadVersion indicates an unsupported major/minor/index version.
	ErrBadVersion = errors.New("dbpf: unsupported archive or index version")

	// ErrTruncatedInput indicates a read hit end of file where bytes were required.
	ErrTruncatedInput = errors.New("dbpf: truncated input")

	// ErrIndexMismatch indicates the entry count and index size disagree
	// with the layout computed from the mask.
	ErrIndexMismatch = errors.New("dbpf: index size does not match entry count and mask")

	// ErrCompressionFailed indicates a RefPack decompression error surfaced
	// while servicing a chunk read, not during parse.
	ErrCompressionFailed = errors.New("dbpf: chunk decompression failed")

	// ErrWrongResourceType indicates a domain parser was handed a chunk of
	// the wrong resource type.
	ErrWrongResourceType = errors.New("dbpf: wrong resource type for parser")

	// ErrBrandMismatch indicates a chunk handle was presented to a reader
	// context other than the one that produced it.
	ErrBrandMismatch = errors.New("dbpf: chunk handle used with wrong reader context")

	// ErrLimitExceeded indicates a declared size exceeded a sanity limit.
	ErrLimitExceeded = errors.New("dbpf: declared size exceeds sanity limit")
)
