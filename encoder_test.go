package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func makeTestCodeTable() CodeTable {
	table, err := NewCodeTable(makeTestTree())
	if err != nil {
		panic(err)
	}
	return table
}

func TestNewCodeTable(t *testing.T) {
	table := makeTestCodeTable()

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tLen() = 6\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if !table.IsPrefixFree() {
		t.Errorf("table is not prefix-free")
	}

	freq := MakeFrequencyTable([]uint64{5, 9, 12, 13, 16, 45})
	if actual := table.EncodedLen(freq); actual != 224 {
		t.Errorf("expected encoded length 224, got %d", actual)
	}
}

func TestCodeTable_String(t *testing.T) {
	table := makeTestCodeTable()

	expectString := "(Huffman code table with 6 symbols, with coded lengths of 1 .. 4 bits)"
	actualString := table.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestNewCodeTable_SingleSymbol(t *testing.T) {
	table, err := NewCodeTable(BuildTree(CountFrequencies(bytes.Repeat([]byte{0x41}, 1000))))
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", table.Len())
	}
	if expect, actual := MakeCode(1, 0), table.Encode(0x41); expect != actual {
		t.Errorf("expected code %v, got %v", expect, actual)
	}
}

func TestNewCodeTable_Empty(t *testing.T) {
	table, err := NewCodeTable(BuildTree(FrequencyTable{}))
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("expected empty table, got %d entries", table.Len())
	}
}

// fibonacciFrequencies yields counts that make the Huffman tree a chain, so
// the two rarest symbols sit at depth n-1.
func fibonacciFrequencies(n int) FrequencyTable {
	counts := make([]uint64, n)
	counts[0], counts[1] = 1, 1
	for i := 2; i < n; i++ {
		counts[i] = counts[i-1] + counts[i-2]
	}
	return MakeFrequencyTable(counts)
}

func TestNewCodeTable_MaxDepth(t *testing.T) {
	table, err := NewCodeTable(BuildTree(fibonacciFrequencies(65)))
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	if actual := table.MaxSize(); actual != MaxCodeSize {
		t.Errorf("expected max size %d, got %d", MaxCodeSize, actual)
	}
	if actual := table.Encode(0).Size; actual != MaxCodeSize {
		t.Errorf("expected symbol 0 to have a %d-bit code, got %d", MaxCodeSize, actual)
	}
	if !table.IsPrefixFree() {
		t.Errorf("table is not prefix-free")
	}
}

func TestNewCodeTable_Overflow(t *testing.T) {
	_, err := NewCodeTable(BuildTree(fibonacciFrequencies(66)))
	if !errors.Is(err, ErrCodeOverflow) {
		t.Errorf("expected ErrCodeOverflow, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	table := makeTestCodeTable()

	// 5 → "0", 2 → "100", 0 → "1100", 4 → "111"
	bs, err := Encode(&table, []byte{5, 2, 0, 4})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expectBytes := []byte{0x4c, 0xe0}
	if !bytes.Equal(expectBytes, bs.Bytes) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expectBytes, bs.Bytes)
	}
	if bs.Len != 11 {
		t.Errorf("expected 11 bits, got %d", bs.Len)
	}
}

func TestEncode_MissingSymbol(t *testing.T) {
	table := makeTestCodeTable()
	if _, err := Encode(&table, []byte{5, 9}); err == nil {
		t.Errorf("expected an error for a byte without a code")
	}
}
