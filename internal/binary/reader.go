// Package binary provides the small length-prefixed encoding helpers shared
// by the filetypes and geom packages.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"unicode/utf16"
)

// ReadAt reads len(buf) bytes from r at offset.
func ReadAt(r io.ReaderAt, offset int64, buf []byte) error {
	_, err := r.ReadAt(buf, offset)
	if err != nil {
		return fmt.Errorf("read at offset %d: %w", offset, err)
	}
	return nil
}

// ReadBytesAt reads n bytes from r at offset.
func ReadBytesAt(r io.ReaderAt, offset int64, n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := ReadAt(r, offset, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadUint32LEAt reads a little-endian uint32 from r at offset.
func ReadUint32LEAt(r io.ReaderAt, offset int64) (uint32, error) {
	buf := make([]byte, 4)
	if err := ReadAt(r, offset, buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// BytesEqual compares two byte slices for equality.
func BytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FindBytes searches for needle in haystack and returns the offset, or -1 if not found.
func FindBytes(haystack, needle []byte) int {
	if len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i <= len(haystack)-len(needle); i++ {
		if BytesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// ReadLengthPrefixedBytes reads a 32-bit little-endian length followed by
// that many bytes: the length-prefixed byte vector used by chunk
// sub-formats such as NMAP records.
func ReadLengthPrefixedBytes(r io.Reader) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("read length prefix: %w", err)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read %d-byte vector: %w", length, err)
	}
	return buf, nil
}

// WriteLengthPrefixedBytes writes a 32-bit little-endian length followed by
// the given bytes.
func WriteLengthPrefixedBytes(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b))); err != nil { //nolint:gosec // bounded by caller
		return fmt.Errorf("write length prefix: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write %d-byte vector: %w", len(b), err)
	}
	return nil
}

// ReadLengthPrefixedUTF16 reads a 32-bit length-in-bytes prefix followed by
// length/2 16-bit code units in the given byte order, decoding them lossily
// to a Go string (invalid surrogates become the replacement character).
func ReadLengthPrefixedUTF16(r io.Reader, order binary.ByteOrder) (string, error) {
	var lengthBytes uint32
	if err := binary.Read(r, binary.LittleEndian, &lengthBytes); err != nil {
		return "", fmt.Errorf("read utf-16 length prefix: %w", err)
	}
	if lengthBytes%2 != 0 {
		return "", fmt.Errorf("utf-16 byte length %d is not a multiple of 2", lengthBytes)
	}
	raw := make([]byte, lengthBytes)
	if _, err := io.ReadFull(r, raw); err != nil {
		return "", fmt.Errorf("read utf-16 payload: %w", err)
	}
	units := make([]uint16, lengthBytes/2)
	for i := range units {
		units[i] = order.Uint16(raw[i*2 : i*2+2])
	}
	return string(utf16.Decode(units)), nil
}

// WriteSortedMap writes the key/value pairs of m in ascending key order via
// writeEntry, mirroring the sorted-map writer utility used to re-serialize a
// gathered name map back into NMAP chunk bytes.
func WriteSortedMap[V any](w io.Writer, m map[uint64]V, writeEntry func(io.Writer, uint64, V) error) error {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if err := writeEntry(w, k, m[k]); err != nil {
			return err
		}
	}
	return nil
}
