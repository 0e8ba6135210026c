package huffman

import (
	"errors"
	"io"
	"math"
)

// addSaturating adds two weights, pinning the result at math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}

// byteLen is the number of bytes needed to hold bitLen bits.
func byteLen(bitLen uint64) uint64 {
	n := bitLen / 8
	if bitLen%8 != 0 {
		n++
	}
	return n
}

func readError(op string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return &IOError{Op: op, Err: err}
}
