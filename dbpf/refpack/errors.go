package refpack

import "errors"

const (
	// MaxDecompressedSize caps the size a malicious header may declare, to
	// bound the pre-allocation a decompressor performs before reading input.
	MaxDecompressedSize = 512 * 1024 * 1024
)

// Errors returned by Decompress.
var (
	// ErrExpectedAnotherByte indicates the input ended mid-command.
	ErrExpectedAnotherByte = errors.New("refpack: expected another byte, found none")

	// ErrOffsetOutOfBounds indicates a back-reference addressed bytes
	// before the start of the output.
	ErrOffsetOutOfBounds = errors.New("refpack: duplicate offset out of bounds")

	// ErrInvalidMagic indicates the second header byte was not 0xFB.
	ErrInvalidMagic = errors.New("refpack: invalid magic byte")

	// ErrSizeTooLarge indicates the declared decompressed size exceeded
	// MaxDecompressedSize.
	ErrSizeTooLarge = errors.New("refpack: declared decompressed size too large")
)
