package refpack_test

import (
	"testing"

	"github.com/kitlith/sims3-dbpf/dbpf/refpack"
)

// FuzzDecompress feeds arbitrary bytes to Decompress: adversarial input
// must return an error, never panic or run away allocating memory.
func FuzzDecompress(f *testing.F) {
	f.Add(buildStream(0, []byte{0b11111100}))
	f.Add(buildStream(8, []byte{0x0E, 0x01, 'A', 'B'}))
	f.Add(buildStream(4, []byte{0b11100000, 'h', 'i', 'x', 'y', 0b11111100}))
	f.Add([]byte{})
	f.Add([]byte{0x10, 0xFB})
	f.Add([]byte{0x90, 0xFB, 0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		got, err := refpack.Decompress(data)
		if err != nil {
			return
		}
		if len(got) > refpack.MaxDecompressedSize {
			t.Errorf("Decompress() returned %d bytes, exceeding MaxDecompressedSize", len(got))
		}
	})
}
