package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol present in the input to its Code.  Symbols
// without a code have a zero-sized entry.
type CodeTable struct {
	codes   [NumSymbols]Code
	len     int
	minSize byte
	maxSize byte
}

// NewCodeTable walks the tree depth-first and assigns each leaf the path
// leading to it, with "0" for left and "1" for right.
//
// A tree consisting of a single leaf has no path to walk; its symbol is given
// the one-bit code "0" so that every occurrence still produces output.
//
// If any leaf lies deeper than MaxCodeSize, ErrCodeOverflow is returned.
func NewCodeTable(t Tree) (CodeTable, error) {
	var table CodeTable
	if t.root == noNode {
		return table, nil
	}
	if root := t.nodes[t.root]; root.leaf {
		table.set(root.symbol, MakeCode(1, 0))
		return table, nil
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int32
		code  Code
		x     byte
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		if x == 2 {
			stack = stack[:len(stack)-1]
			continue
		}

		if top.code.Size == MaxCodeSize {
			return CodeTable{}, fmt.Errorf("leaf below %s: %w", top.code, ErrCodeOverflow)
		}

		bit := uint(x)
		child := t.nodes[top.index].child(bit)
		code := top.code.Append(bit)
		if node := t.nodes[child]; node.leaf {
			table.set(node.symbol, code)
		} else {
			stack = append(stack, stackItem{index: child, code: code})
		}
	}
	return table, nil
}

func (table *CodeTable) set(symbol Symbol, hc Code) {
	if table.codes[symbol].Size == 0 {
		table.len++
	}
	table.codes[symbol] = hc
	if table.minSize == 0 || hc.Size < table.minSize {
		table.minSize = hc.Size
	}
	if hc.Size > table.maxSize {
		table.maxSize = hc.Size
	}
}

// Encode returns the Code for symbol, or a zero-sized Code if the symbol has
// none.
func (table *CodeTable) Encode(symbol Symbol) Code {
	return table.codes[symbol]
}

// Len returns the number of symbols with a code.
func (table *CodeTable) Len() int {
	return table.len
}

// MinSize is the bit length of the shortest code.
func (table *CodeTable) MinSize() byte {
	return table.minSize
}

// MaxSize is the bit length of the longest code.
func (table *CodeTable) MaxSize() byte {
	return table.maxSize
}

// Symbols lists the symbols that have a code, in ascending order.
func (table *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, table.len)
	for symbol, hc := range table.codes {
		if hc.Size != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// EncodedLen returns the number of bits that input with the given
// frequencies encodes to.
func (table *CodeTable) EncodedLen(freq FrequencyTable) uint64 {
	var total uint64
	for symbol, hc := range table.codes {
		total = addSaturating(total, freq.counts[symbol]*uint64(hc.Size))
	}
	return total
}

// IsPrefixFree reports whether no code in the table is a prefix of another.
func (table *CodeTable) IsPrefixFree() bool {
	symbols := table.Symbols()
	for i, a := range symbols {
		for _, b := range symbols[i+1:] {
			ca, cb := table.codes[a], table.codes[b]
			if ca.HasPrefix(cb) || cb.HasPrefix(ca) {
				return false
			}
		}
	}
	return true
}

// String returns a short human-readable description of the table.
func (table *CodeTable) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)",
		table.len, table.minSize, table.maxSize)
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", table.len)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.maxSize)
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, table.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*CodeTable)(nil)
