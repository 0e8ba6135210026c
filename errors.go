package huffman

import (
	"errors"
	"fmt"
)

// ErrCorrupt is matched (via errors.Is) by every error that reports a
// malformed container.
var ErrCorrupt = errors.New("huffman: corrupt container")

var (
	// ErrTruncated means the container ended before the header, the
	// table, or the payload was complete.
	ErrTruncated = fmt.Errorf("%w: truncated", ErrCorrupt)

	// ErrEntryCount means the header declares more table entries than
	// there are symbols.
	ErrEntryCount = fmt.Errorf("%w: too many table entries", ErrCorrupt)

	// ErrCodeLength means a table entry's code length exceeds MaxCodeSize.
	ErrCodeLength = fmt.Errorf("%w: invalid code length", ErrCorrupt)

	// ErrCodeBits means a table entry has bits set above its code length.
	ErrCodeBits = fmt.Errorf("%w: code bits exceed code length", ErrCorrupt)

	// ErrDuplicateSymbol means two table entries name the same symbol.
	ErrDuplicateSymbol = fmt.Errorf("%w: duplicate symbol", ErrCorrupt)

	// ErrAmbiguousCode means some code is empty, equal to another code,
	// or a prefix of another code.
	ErrAmbiguousCode = fmt.Errorf("%w: code table is not prefix-free", ErrCorrupt)

	// ErrPartialCode means the declared bit length ends in the middle of
	// a code.
	ErrPartialCode = fmt.Errorf("%w: bitstream ends inside a code", ErrCorrupt)

	// ErrInvalidPath means the bitstream follows a path that no code in
	// the table covers.
	ErrInvalidPath = fmt.Errorf("%w: bitstream does not match any code", ErrCorrupt)

	// ErrPadding means the bits after the declared bit length are not
	// all zero.
	ErrPadding = fmt.Errorf("%w: non-zero padding bits", ErrCorrupt)

	// ErrTrailingData means bytes follow the payload.
	ErrTrailingData = fmt.Errorf("%w: trailing data after payload", ErrCorrupt)
)

// ErrCodeOverflow is returned when the tree is too deep for some symbol's
// code to fit in MaxCodeSize bits.
var ErrCodeOverflow = fmt.Errorf("huffman: code exceeds %d bits", MaxCodeSize)

// IOError reports a failure of the underlying reader or writer.  Running out
// of input while reading a container is reported as ErrTruncated instead.
type IOError struct {
	Op  string
	Err error
}

// Error returns the operation and the underlying error message.
func (e *IOError) Error() string {
	return "huffman: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
