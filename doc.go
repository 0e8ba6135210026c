// Package huffman implements a lossless single-file compressor based on
// Huffman codes built over the byte alphabet.
//
// Compression counts byte frequencies, builds a Huffman tree with a fixed
// tie-breaking order, derives one prefix-free code per byte present, and
// writes a Container holding the code table, the exact payload bit length,
// and the packed payload.  Decompression rebuilds a decode trie from the
// table and walks exactly the declared number of bits.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
