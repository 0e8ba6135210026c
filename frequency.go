package huffman

import (
	"bufio"
	"io"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable holds the number of occurrences of each Symbol.  The zero
// value is an empty table.
type FrequencyTable struct {
	counts [NumSymbols]uint64
}

// CountFrequencies scans data once and tallies each byte.
func CountFrequencies(data []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range data {
		freq.counts[b]++
	}
	return freq
}

// CountReader tallies every byte read from r until EOF.
func CountReader(r io.Reader) (FrequencyTable, error) {
	var freq FrequencyTable
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return freq, nil
		}
		if err != nil {
			return FrequencyTable{}, &IOError{Op: "read", Err: err}
		}
		freq.counts[b]++
	}
}

// MakeFrequencyTable builds a table from explicit counts, one per Symbol
// starting at 0.  Symbols not represented in the list have a count of 0.
func MakeFrequencyTable(counts []uint64) FrequencyTable {
	assert.Assertf(len(counts) <= NumSymbols, "len(counts) %d > NumSymbols %d", len(counts), NumSymbols)

	var freq FrequencyTable
	copy(freq.counts[:], counts)
	return freq
}

// Count returns the number of occurrences of symbol.
func (freq *FrequencyTable) Count(symbol Symbol) uint64 {
	return freq.counts[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (freq *FrequencyTable) Len() int {
	var n int
	for _, count := range freq.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (freq *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freq.counts {
		total = addSaturating(total, count)
	}
	return total
}

// Symbols lists the symbols with a non-zero count in ascending order.
func (freq *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, freq.Len())
	for symbol, count := range freq.counts {
		if count != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}
