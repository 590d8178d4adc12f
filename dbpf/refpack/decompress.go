// Package refpack decompresses RefPack/QFS streams, the bespoke LZ77-family
// codec used for compressed DBPF chunks.
package refpack

import "fmt"

// command is one decoded RefPack instruction: copy `preceding` literal
// bytes from the input, then (unless stop) duplicate `length` bytes
// starting `offset+1` bytes before the current output position.
type command struct {
	preceding int
	length    int
	offset    int
	stop      bool
}

// decoder walks a RefPack input buffer and appends to an output buffer.
type decoder struct {
	input  []byte
	output []byte
}

// take returns the next n bytes of input and advances past them.
func (d *decoder) take(n int) ([]byte, error) {
	if len(d.input) < n {
		return nil, ErrExpectedAnotherByte
	}
	b := d.input[:n]
	d.input = d.input[n:]
	return b, nil
}

// duplicate appends length bytes to output, copying one at a time
// starting at start. This must not be a bulk copy: start+i may fall inside
// the range already appended by this same call, which is how RefPack
// encodes run-length expansions (offset+1 < length).
func (d *decoder) duplicate(start, length int) {
	for i := 0; i < length; i++ {
		d.output = append(d.output, d.output[start+i])
	}
}

func (d *decoder) readCommand() (command, error) {
	if len(d.input) == 0 {
		return command{}, ErrExpectedAnotherByte
	}

	switch {
	case d.input[0]&0x80 == 0:
		// 2 bytes: 0OOLLLPP OOOOOOOO
		b, err := d.take(2)
		if err != nil {
			return command{}, err
		}
		return command{
			preceding: int(b[0]) & 3,
			length:    ((int(b[0]) & 0b00011100) >> 2) + 3,
			offset:    ((int(b[0]) & 0b01100000) << 3) + int(b[1]),
		}, nil

	case d.input[0]&0x40 == 0:
		// 3 bytes: 10LLLLLL PPOOOOOO OOOOOOOO
		b, err := d.take(3)
		if err != nil {
			return command{}, err
		}
		return command{
			preceding: (int(b[1]) & 0b11000000) >> 6,
			length:    (int(b[0]) & 0b00111111) + 4,
			offset:    ((int(b[1]) & 0b00111111) << 8) + int(b[2]),
		}, nil

	case d.input[0]&0x20 == 0:
		// 4 bytes: 110OLLPP OOOOOOOO OOOOOOOO LLLLLLLL
		b, err := d.take(4)
		if err != nil {
			return command{}, err
		}
		return command{
			preceding: int(b[0]) & 0b00000011,
			length:    ((int(b[0]) & 0b00001100) << 6) + int(b[3]) + 5,
			offset:    ((int(b[0]) & 0b00010000) << 12) + (int(b[1]) << 8) + int(b[2]),
		}, nil

	default:
		// 1 byte: 111PPPPP, or Stop if the middle bits read 0b00011100.
		b, err := d.take(1)
		if err != nil {
			return command{}, err
		}
		cmd := b[0]
		if cmd&0b00011100 == 0b00011100 {
			return command{preceding: int(cmd) & 0b00000011, stop: true}, nil
		}
		return command{preceding: ((int(cmd) & 0b00011111) + 1) << 2}, nil
	}
}

func readHeader(input []byte) (body []byte, decompressedSize int, err error) {
	d := decoder{input: input}

	flagsByte, err := d.take(1)
	if err != nil {
		return nil, 0, err
	}
	magic, err := d.take(1)
	if err != nil {
		return nil, 0, err
	}
	if magic[0] != 0xFB {
		return nil, 0, ErrInvalidMagic
	}

	flags := flagsByte[0]
	large := flags&0x80 != 0
	sizePresent := flags&0x01 != 0

	if sizePresent {
		n := 3
		if large {
			n = 4
		}
		if _, err := d.take(n); err != nil {
			return nil, 0, err
		}
	}

	n := 3
	if large {
		n = 4
	}
	sizeBytes, err := d.take(n)
	if err != nil {
		return nil, 0, err
	}
	size := 0
	for _, b := range sizeBytes {
		size = size<<8 | int(b)
	}
	if size > MaxDecompressedSize {
		return nil, 0, fmt.Errorf("%w: %d", ErrSizeTooLarge, size)
	}

	return d.input, size, nil
}

// Decompress decompresses a complete RefPack/QFS stream and returns the
// decompressed bytes.
func Decompress(input []byte) ([]byte, error) {
	body, decompressedSize, err := readHeader(input)
	if err != nil {
		return nil, err
	}

	d := decoder{input: body, output: make([]byte, 0, decompressedSize)}

	for len(d.input) > 0 {
		cmd, err := d.readCommand()
		if err != nil {
			return nil, err
		}

		preceding, err := d.take(cmd.preceding)
		if err != nil {
			return nil, err
		}
		d.output = append(d.output, preceding...)

		if cmd.stop {
			break
		}
		if cmd.length == 0 {
			continue
		}

		start := len(d.output) - (cmd.offset + 1)
		if start < 0 || start >= len(d.output) {
			return nil, ErrOffsetOutOfBounds
		}
		d.duplicate(start, cmd.length)
	}

	return d.output, nil
}
