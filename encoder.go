package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Bitstream is a sequence of bits packed MSB-first into bytes.  Len is the
// exact number of valid bits; the final byte holds 0 to 7 zero padding bits
// that are not part of the stream.
type Bitstream struct {
	Bytes []byte
	Len   uint64
}

// Encode concatenates, in input order, the code of each byte of data.  Every
// byte of data must have a code in the table.
func Encode(table *CodeTable, data []byte) (Bitstream, error) {
	var buf bytes.Buffer
	buf.Grow(len(data))

	w := bitio.NewWriter(&buf)
	var bitLen uint64
	for index, b := range data {
		hc := table.codes[b]
		if hc.Size == 0 {
			return Bitstream{}, fmt.Errorf("huffman: byte %d at offset %d has no code", b, index)
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return Bitstream{}, &IOError{Op: "write", Err: err}
		}
		bitLen += uint64(hc.Size)
	}
	if err := w.Close(); err != nil {
		return Bitstream{}, &IOError{Op: "write", Err: err}
	}
	return Bitstream{Bytes: buf.Bytes(), Len: bitLen}, nil
}
