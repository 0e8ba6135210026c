package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// Stats summarizes one Compress or DecompressStats call.
type Stats struct {
	// Table is the code table stored in the container.
	Table *CodeTable

	// Symbols is the number of distinct bytes in the uncompressed data.
	Symbols int

	// Bits is the exact payload length in bits.
	Bits uint64

	// InBytes and OutBytes are the sizes of what was read and written:
	// raw data and container for Compress, the reverse for DecompressStats.
	InBytes  int64
	OutBytes int64
}

// Compress encodes data and writes the resulting container to w.  The whole
// input is held in memory.
func Compress(w io.Writer, data []byte) (Stats, error) {
	c, err := NewContainer(data)
	if err != nil {
		return Stats{}, err
	}
	if err := WriteContainer(w, c); err != nil {
		return Stats{}, err
	}
	return Stats{
		Table:    &c.Table,
		Symbols:  c.Table.Len(),
		Bits:     c.Payload.Len,
		InBytes:  int64(len(data)),
		OutBytes: c.Size(),
	}, nil
}

// NewContainer runs the compression pipeline over data: count frequencies,
// build the tree, derive the code table, and encode.
func NewContainer(data []byte) (*Container, error) {
	freq := CountFrequencies(data)
	table, err := NewCodeTable(BuildTree(freq))
	if err != nil {
		return nil, err
	}
	bs, err := Encode(&table, data)
	if err != nil {
		return nil, err
	}
	assert.Assertf(bs.Len == table.EncodedLen(freq), "encoded %d bits, table predicts %d", bs.Len, table.EncodedLen(freq))
	return &Container{Table: table, Payload: bs}, nil
}

// Decompress reads a container from r and returns the original bytes.
func Decompress(r io.Reader) ([]byte, error) {
	data, _, err := DecompressStats(r)
	return data, err
}

// DecompressStats is Decompress, also reporting what the container held.
func DecompressStats(r io.Reader) ([]byte, Stats, error) {
	c, err := ReadContainer(r)
	if err != nil {
		return nil, Stats{}, err
	}
	d, err := NewDecoder(&c.Table)
	if err != nil {
		return nil, Stats{}, err
	}
	data, err := d.Decode(c.Payload)
	if err != nil {
		return nil, Stats{}, err
	}
	return data, Stats{
		Table:    &c.Table,
		Symbols:  c.Table.Len(),
		Bits:     c.Payload.Len,
		InBytes:  c.Size(),
		OutBytes: int64(len(data)),
	}, nil
}
