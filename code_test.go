package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), `""`},
		{MakeCode(1, 0), `"0"`},
		{MakeCode(3, 5), `"101"`},
		{MakeCode(4, 1), `"0001"`},
		{MakeCode(64, 1<<63), `"1000000000000000000000000000000000000000000000000000000000000000"`},
	}
	for _, row := range testData {
		actual := row.code.String()
		if actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_AppendAndBit(t *testing.T) {
	var hc Code
	for _, bit := range []uint{1, 0, 1, 1} {
		hc = hc.Append(bit)
	}
	if expect := MakeCode(4, 0xb); hc != expect {
		t.Fatalf("expected %v, got %v", expect, hc)
	}
	for i, expect := range []uint{1, 0, 1, 1} {
		if actual := hc.Bit(byte(i)); actual != expect {
			t.Errorf("bit %d: expected %d, got %d", i, expect, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   Code
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{MakeCode(3, 5), MakeCode(1, 1), true},
		{MakeCode(3, 5), MakeCode(2, 2), true},
		{MakeCode(3, 5), MakeCode(3, 5), true},
		{MakeCode(3, 5), MakeCode(2, 3), false},
		{MakeCode(1, 0), MakeCode(2, 0), false},
		{MakeCode(64, 7), MakeCode(0, 0), true},
	}
	for _, row := range testData {
		if actual := row.code.HasPrefix(row.prefix); actual != row.expect {
			t.Errorf("%v.HasPrefix(%v): expected %v, got %v", row.code, row.prefix, row.expect, actual)
		}
	}
}
