// Package dbpf provides parsing and serialization for DBPF ("Database Packed
// File") package archives, the resource container format used by a family
// of life-simulation games.
package dbpf

import (
	"encoding/binary"
	"fmt"
	"io"
)

const headerSize = 96

// dbpfMagic is the four-byte archive magic.
var dbpfMagic = [4]byte{'D', 'B', 'P', 'F'}

const (
	supportedMajor      = 2
	supportedMinor      = 0
	supportedMajorUser  = 0
	supportedMinorUser  = 0
	supportedIndexMajor = 7
	supportedIndexMinor = 3
)

// Header is the 96-byte fixed-layout DBPF archive header.
type Header struct {
	Flags               uint32
	Created             uint32
	Modified            uint32
	EntryCount          uint32
	LegacyIndexPosition uint32
	IndexSize           uint32
	HoleCount           uint32
	HolePosition        uint32
	HoleSize            uint32
	IndexPosition       uint32
}

// parseHeader reads and validates the 96-byte header from the start of r.
func parseHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrTruncatedInput, err)
	}

	var magic [4]byte
	copy(magic[:], buf[0:4])
	if magic != dbpfMagic {
		return nil, ErrBadMagic
	}

	major := binary.LittleEndian.Uint32(buf[4:8])
	minor := binary.LittleEndian.Uint32(buf[8:12])
	majorUser := binary.LittleEndian.Uint32(buf[12:16])
	minorUser := binary.LittleEndian.Uint32(buf[16:20])
	if major != supportedMajor || minor != supportedMinor ||
		majorUser != supportedMajorUser || minorUser != supportedMinorUser {
		return nil, fmt.Errorf("%w: version %d.%d user %d.%d", ErrBadVersion, major, minor, majorUser, minorUser)
	}

	h := &Header{
		Flags:               binary.LittleEndian.Uint32(buf[20:24]),
		Created:             binary.LittleEndian.Uint32(buf[24:28]),
		Modified:            binary.LittleEndian.Uint32(buf[28:32]),
		EntryCount:          binary.LittleEndian.Uint32(buf[36:40]),
		LegacyIndexPosition: binary.LittleEndian.Uint32(buf[40:44]),
		IndexSize:           binary.LittleEndian.Uint32(buf[44:48]),
		HoleCount:           binary.LittleEndian.Uint32(buf[48:52]),
		HolePosition:        binary.LittleEndian.Uint32(buf[52:56]),
		HoleSize:            binary.LittleEndian.Uint32(buf[56:60]),
		IndexPosition:       binary.LittleEndian.Uint32(buf[64:68]),
	}

	indexMajor := binary.LittleEndian.Uint32(buf[32:36])
	indexMinor := binary.LittleEndian.Uint32(buf[60:64])
	if indexMajor != supportedIndexMajor || indexMinor != supportedIndexMinor {
		return nil, fmt.Errorf("%w: index version %d.%d", ErrBadVersion, indexMajor, indexMinor)
	}

	if h.EntryCount > MaxEntryCount {
		return nil, fmt.Errorf("%w: entry_count %d", ErrLimitExceeded, h.EntryCount)
	}
	if h.IndexSize > MaxIndexSize {
		return nil, fmt.Errorf("%w: index_size %d", ErrLimitExceeded, h.IndexSize)
	}

	return h, nil
}

// writeHeader writes h as a 96-byte DBPF header to w.
func writeHeader(w io.Writer, h *Header) error {
	buf := make([]byte, headerSize)
	copy(buf[0:4], dbpfMagic[:])
	binary.LittleEndian.PutUint32(buf[4:8], supportedMajor)
	binary.LittleEndian.PutUint32(buf[8:12], supportedMinor)
	binary.LittleEndian.PutUint32(buf[12:16], supportedMajorUser)
	binary.LittleEndian.PutUint32(buf[16:20], supportedMinorUser)
	binary.LittleEndian.PutUint32(buf[20:24], h.Flags)
	binary.LittleEndian.PutUint32(buf[24:28], h.Created)
	binary.LittleEndian.PutUint32(buf[28:32], h.Modified)
	binary.LittleEndian.PutUint32(buf[32:36], supportedIndexMajor)
	binary.LittleEndian.PutUint32(buf[36:40], h.EntryCount)
	binary.LittleEndian.PutUint32(buf[40:44], 0) // legacy_index_position
	binary.LittleEndian.PutUint32(buf[44:48], h.IndexSize)
	binary.LittleEndian.PutUint32(buf[48:52], 0) // hole_count
	binary.LittleEndian.PutUint32(buf[52:56], 0) // hole_position
	binary.LittleEndian.PutUint32(buf[56:60], 0) // hole_size
	binary.LittleEndian.PutUint32(buf[60:64], supportedIndexMinor)
	binary.LittleEndian.PutUint32(buf[64:68], h.IndexPosition)
	// buf[68:96] stays zeroed: 28 reserved bytes.

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}
