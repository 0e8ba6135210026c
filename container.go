package huffman

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Container is the serialized form of a compressed file: a code table and
// the payload bitstream.
//
// On disk, all integers are big-endian:
//
//	[entryCount: u64]
//	[bitLength: u64]
//	entryCount × [symbol: u8][codeLength: u8][codeBits: u64, right-aligned]
//	[payload: bitLength bits, MSB-first, zero-padded to a byte boundary]
type Container struct {
	Table   CodeTable
	Payload Bitstream
}

const (
	headerSize = 8 + 8
	entrySize  = 1 + 1 + 8
)

// Size returns the number of bytes WriteContainer produces for c.
func (c *Container) Size() int64 {
	return headerSize + entrySize*int64(c.Table.Len()) + int64(byteLen(c.Payload.Len))
}

// WriteContainer serializes c to w.  Table entries are written in ascending
// symbol order, so equal containers always produce equal bytes.
func WriteContainer(w io.Writer, c *Container) error {
	if got, want := uint64(len(c.Payload.Bytes)), byteLen(c.Payload.Len); got != want {
		return fmt.Errorf("huffman: payload holds %d bytes for %d bits, want %d", got, c.Payload.Len, want)
	}

	bw := bitio.NewWriter(w)
	write := func(v uint64, n uint8) error {
		if err := bw.WriteBits(v, n); err != nil {
			return &IOError{Op: "write", Err: err}
		}
		return nil
	}

	if err := write(uint64(c.Table.Len()), 64); err != nil {
		return err
	}
	if err := write(c.Payload.Len, 64); err != nil {
		return err
	}
	for _, symbol := range c.Table.Symbols() {
		hc := c.Table.codes[symbol]
		if err := write(uint64(symbol), 8); err != nil {
			return err
		}
		if err := write(uint64(hc.Size), 8); err != nil {
			return err
		}
		if err := write(hc.Bits, 64); err != nil {
			return err
		}
	}
	if _, err := bw.Write(c.Payload.Bytes); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if err := bw.Close(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// ReadContainer deserializes a container from r, consuming r to EOF.
//
// The table is checked entry by entry: each code length must lie in
// 1..MaxCodeSize, no bits may be set above the code length, and no symbol may
// appear twice.  The payload must hold exactly as many bytes as the declared
// bit length requires.  Whether the table is prefix-free is checked when a
// Decoder is built from it.
func ReadContainer(r io.Reader) (*Container, error) {
	br := bitio.NewReader(r)

	entryCount, err := br.ReadBits(64)
	if err != nil {
		return nil, fmt.Errorf("reading entry count: %w", readError("read", err))
	}
	if entryCount > NumSymbols {
		return nil, fmt.Errorf("%d entries: %w", entryCount, ErrEntryCount)
	}

	bitLen, err := br.ReadBits(64)
	if err != nil {
		return nil, fmt.Errorf("reading bit length: %w", readError("read", err))
	}
	if entryCount == 0 && bitLen != 0 {
		return nil, fmt.Errorf("%d payload bits with an empty table: %w", bitLen, ErrInvalidPath)
	}

	c := new(Container)
	for i := uint64(0); i < entryCount; i++ {
		entry, err := readEntry(br)
		if err != nil {
			return nil, fmt.Errorf("reading table entry %d: %w", i, err)
		}
		if c.Table.codes[entry.symbol].Size != 0 {
			return nil, fmt.Errorf("table entry %d, symbol %d: %w", i, entry.symbol, ErrDuplicateSymbol)
		}
		c.Table.set(entry.symbol, entry.code)
	}

	payload, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", readError("read", err))
	}
	want := byteLen(bitLen)
	switch got := uint64(len(payload)); {
	case got < want:
		return nil, fmt.Errorf("payload has %d of %d bytes: %w", got, want, ErrTruncated)
	case got > want:
		return nil, fmt.Errorf("payload has %d bytes, want %d: %w", got, want, ErrTrailingData)
	}

	c.Payload = Bitstream{Bytes: payload, Len: bitLen}
	return c, nil
}

type tableEntry struct {
	symbol Symbol
	code   Code
}

func readEntry(br *bitio.Reader) (tableEntry, error) {
	symbol, err := br.ReadBits(8)
	if err != nil {
		return tableEntry{}, readError("read", err)
	}
	size, err := br.ReadBits(8)
	if err != nil {
		return tableEntry{}, readError("read", err)
	}
	bits, err := br.ReadBits(64)
	if err != nil {
		return tableEntry{}, readError("read", err)
	}

	switch {
	case size > MaxCodeSize:
		return tableEntry{}, fmt.Errorf("symbol %d, length %d: %w", symbol, size, ErrCodeLength)
	case size == 0:
		// An empty code is a prefix of every other path.
		return tableEntry{}, fmt.Errorf("symbol %d, length 0: %w", symbol, ErrAmbiguousCode)
	case size < MaxCodeSize && bits>>size != 0:
		return tableEntry{}, fmt.Errorf("symbol %d, length %d, bits %#x: %w", symbol, size, bits, ErrCodeBits)
	}
	return tableEntry{Symbol(symbol), MakeCode(byte(size), bits)}, nil
}
