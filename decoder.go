package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Decoder resolves a bitstream back into symbols by walking a trie rebuilt
// from a CodeTable.
type Decoder struct {
	trie    Tree
	minSize byte
}

// NewDecoder builds the decode trie for the given table.  It returns an error
// matching ErrAmbiguousCode if some code is a prefix of another.
func NewDecoder(table *CodeTable) (*Decoder, error) {
	d := &Decoder{trie: Tree{root: noNode}, minSize: table.minSize}
	if table.len == 0 {
		return d, nil
	}

	d.trie.nodes = make([]treeNode, 0, 2*table.len)
	d.trie.root = d.newNode()
	for _, symbol := range table.Symbols() {
		if err := d.insert(symbol, table.codes[symbol]); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Decoder) newNode() int32 {
	index := int32(len(d.trie.nodes))
	d.trie.nodes = append(d.trie.nodes, treeNode{left: noNode, right: noNode})
	return index
}

func (d *Decoder) insert(symbol Symbol, hc Code) error {
	index := d.trie.root
	for i := byte(0); i < hc.Size; i++ {
		if d.trie.nodes[index].leaf {
			return fmt.Errorf("symbol %d code %s extends the code of symbol %d: %w",
				symbol, hc, d.trie.nodes[index].symbol, ErrAmbiguousCode)
		}

		bit := hc.Bit(i)
		child := d.trie.nodes[index].child(bit)
		if child == noNode {
			child = d.newNode()
			if bit == 0 {
				d.trie.nodes[index].left = child
			} else {
				d.trie.nodes[index].right = child
			}
		}
		index = child
	}

	node := &d.trie.nodes[index]
	switch {
	case node.leaf:
		return fmt.Errorf("symbols %d and %d share code %s: %w", node.symbol, symbol, hc, ErrAmbiguousCode)
	case node.left != noNode || node.right != noNode:
		return fmt.Errorf("symbol %d code %s is a prefix of another code: %w", symbol, hc, ErrAmbiguousCode)
	}
	node.leaf = true
	node.symbol = symbol
	return nil
}

// Decode walks exactly bs.Len bits of the stream and returns the symbols they
// encode.  The walk must end on a symbol boundary and the padding bits of
// the final byte must be zero.
func (d *Decoder) Decode(bs Bitstream) ([]byte, error) {
	if bs.Len == 0 {
		return []byte{}, nil
	}
	if d.trie.root == noNode {
		return nil, fmt.Errorf("%d payload bits with an empty table: %w", bs.Len, ErrInvalidPath)
	}

	estimate := bs.Len
	if avail := uint64(len(bs.Bytes)) * 8; estimate > avail {
		estimate = avail
	}
	out := make([]byte, 0, estimate/uint64(d.minSize))

	br := bitio.NewReader(bytes.NewReader(bs.Bytes))
	nodes := d.trie.nodes
	index := d.trie.root
	for pos := uint64(0); pos < bs.Len; pos++ {
		bit, err := br.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("reading bit %d of %d: %w", pos, bs.Len, readError("read", err))
		}

		var next int32
		if bit {
			next = nodes[index].right
		} else {
			next = nodes[index].left
		}
		if next == noNode {
			return nil, fmt.Errorf("at bit %d: %w", pos, ErrInvalidPath)
		}

		if nodes[next].leaf {
			out = append(out, byte(nodes[next].symbol))
			index = d.trie.root
		} else {
			index = next
		}
	}
	if index != d.trie.root {
		return nil, fmt.Errorf("after %d bits: %w", bs.Len, ErrPartialCode)
	}

	if pad := uint8((8 - bs.Len%8) % 8); pad != 0 {
		v, err := br.ReadBits(pad)
		if err != nil {
			return nil, fmt.Errorf("reading padding: %w", readError("read", err))
		}
		if v != 0 {
			return nil, fmt.Errorf("padding %#x: %w", v, ErrPadding)
		}
	}
	return out, nil
}
