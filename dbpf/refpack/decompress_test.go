package refpack_test

import (
	"errors"
	"testing"

	"github.com/kitlith/sims3-dbpf/dbpf/refpack"
)

// buildStream assembles a minimal RefPack header (no optional compressed
// size field, 3-byte decompressed size) followed by body.
func buildStream(decompressedSize int, body []byte) []byte {
	out := []byte{0x10, 0xFB} // flags: no large-mode, no size-present bit
	out = append(out,
		byte(decompressedSize>>16),
		byte(decompressedSize>>8),
		byte(decompressedSize),
	)
	return append(out, body...)
}

func TestDecompressStopOnly(t *testing.T) {
	t.Parallel()

	// 111PPPPP with the stop pattern (middle bits 0b00011100) and
	// preceding=0: a stream that produces zero bytes of output.
	stream := buildStream(0, []byte{0b11111100})

	got, err := refpack.Decompress(stream)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Decompress() = %v, want empty", got)
	}
}

// TestDecompressShortBackReference exercises the load-bearing
// byte-by-byte duplicate: a 2-byte command with preceding="AB" and a
// distance-2 back-reference of length 6 must reconstruct "ABABABAB" by
// reading bytes it has itself just written, not a bulk copy.
func TestDecompressShortBackReference(t *testing.T) {
	t.Parallel()

	// 2-byte command 0OOLLLPP OOOOOOOO: preceding=2, length=6 (v=3),
	// offset=1 (distance 2).
	body := []byte{0x0E, 0x01, 'A', 'B'}
	stream := buildStream(8, body)

	got, err := refpack.Decompress(stream)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	want := "ABABABAB"
	if string(got) != want {
		t.Errorf("Decompress() = %q, want %q", got, want)
	}
}

func TestDecompressLiteralOnly(t *testing.T) {
	t.Parallel()

	// 1-byte literal command 111PPPPP (not the stop pattern): always
	// copies a multiple of 4 literal bytes, then a stop command.
	body := []byte{0b11100000, 'h', 'i', 'x', 'y', 0b11111100}
	stream := buildStream(4, body)

	got, err := refpack.Decompress(stream)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if string(got) != "hixy" {
		t.Errorf("Decompress() = %q, want %q", got, "hixy")
	}
}

func TestDecompressInvalidMagic(t *testing.T) {
	t.Parallel()

	stream := []byte{0x10, 0x00, 0, 0, 0}
	if _, err := refpack.Decompress(stream); !errors.Is(err, refpack.ErrInvalidMagic) {
		t.Errorf("Decompress() error = %v, want ErrInvalidMagic", err)
	}
}

func TestDecompressTruncated(t *testing.T) {
	t.Parallel()

	if _, err := refpack.Decompress([]byte{0x10, 0xFB, 0x00}); !errors.Is(err, refpack.ErrExpectedAnotherByte) {
		t.Errorf("Decompress() error = %v, want ErrExpectedAnotherByte", err)
	}
}

func TestDecompressOffsetOutOfBounds(t *testing.T) {
	t.Parallel()

	// preceding=0, length=6, offset huge: back-reference before the
	// start of output.
	body := []byte{0x0C, 0xFF}
	stream := buildStream(6, body)

	if _, err := refpack.Decompress(stream); !errors.Is(err, refpack.ErrOffsetOutOfBounds) {
		t.Errorf("Decompress() error = %v, want ErrOffsetOutOfBounds", err)
	}
}
