package huffman

// Symbol represents one byte of input.  The alphabet is always the full byte
// range, 0 through 255.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxCodeSize is the longest code, in bits, that a container can store.
const MaxCodeSize = 64
