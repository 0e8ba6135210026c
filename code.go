package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits, right-aligned.  The most
	// significant of the Size low bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one trailing bit.  The caller must
// ensure hc.Size < MaxCodeSize.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// Bit returns the i'th bit of the Code, counting from the first.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix reports whether p is a prefix of hc.  Every Code is a prefix of
// itself.
func (hc Code) HasPrefix(p Code) bool {
	if p.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-p.Size) == p.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
