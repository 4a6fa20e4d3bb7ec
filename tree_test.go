package huffman

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func codeStrings(codes map[Symbol]Code) map[Symbol]string {
	out := make(map[Symbol]string, len(codes))
	for symbol, hc := range codes {
		out[symbol] = hc.Bits().String()
	}
	return out
}

func TestBuildTree_Empty(t *testing.T) {
	root, err := BuildTree(FrequencyTable{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if root != nil {
		t.Errorf("expected nil root, got %+v", root)
	}
}

func TestBuildTree_Classic(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if expect, actual := uint64(100), root.Weight; expect != actual {
		t.Errorf("wrong root weight: expect %d, actual %d", expect, actual)
	}

	expect := map[Symbol]string{
		'a': "1100",
		'b': "1101",
		'c': "100",
		'd': "101",
		'e': "111",
		'f': "0",
	}
	if diff := cmp.Diff(expect, codeStrings(Codes(root))); diff != "" {
		t.Errorf("wrong codes (-expect +actual):\n%s", diff)
	}
}

func TestBuildTree_Ties(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 1, 'b': 1, 'c': 2})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	codes := Codes(root)
	c := codes['c'].Size()
	if c > codes['a'].Size() || c > codes['b'].Size() {
		t.Errorf("'c' is heavier but has a longer code: %v", codeStrings(codes))
	}

	expect := map[Symbol]string{'a': "10", 'b': "11", 'c': "0"}
	if diff := cmp.Diff(expect, codeStrings(codes)); diff != "" {
		t.Errorf("wrong codes (-expect +actual):\n%s", diff)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 4})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if root.IsLeaf() || root.Left == nil || root.Right != nil {
		t.Fatalf("expected a root with only a left child, got %+v", root)
	}
	if expect, actual := Symbol('a'), root.Left.Symbol; expect != actual {
		t.Errorf("wrong leaf: expect %v, actual %v", expect, actual)
	}

	expect := map[Symbol]string{'a': "0"}
	if diff := cmp.Diff(expect, codeStrings(Codes(root))); diff != "" {
		t.Errorf("wrong codes (-expect +actual):\n%s", diff)
	}
}

func TestCodes_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		freq := make(FrequencyTable)
		numSymbols := 2 + rng.Intn(60)
		for i := 0; i < numSymbols; i++ {
			freq[Symbol('!'+rng.Intn(200))] = 1 + uint64(rng.Intn(1000))
		}

		root, err := BuildTree(freq)
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		codes := Codes(root)
		if len(codes) != len(freq) {
			t.Fatalf("expected %d codes, got %d", len(freq), len(codes))
		}
		for a, ca := range codes {
			for b, cb := range codes {
				if a != b && ca.HasPrefix(cb) {
					t.Errorf("code %s of %v has prefix %s of %v", ca, a, cb, b)
				}
			}
		}
	}
}

func TestSerializeTree(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 2, 'b': 1, 'c': 1})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	expect := "0" + "1" + "10000110" + "0" + "1" + "01000110" + "1" + "11000110"
	bb := SerializeTree(root)
	if actual := bb.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	single, err := BuildTree(FrequencyTable{'a': 4})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if expect, actual := "1"+"10000110", SerializeTree(single).String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestDeserializeTree(t *testing.T) {
	type testRow struct {
		name string
		freq FrequencyTable
	}

	testData := [...]testRow{
		{"single", FrequencyTable{'a': 4}},
		{"aabc", FrequencyTable{'a': 2, 'b': 1, 'c': 1}},
		{"classic", FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}},
		{"unicode", FrequencyTable{'é': 3, '✓': 1, '😀': 2, 'x': 7}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			root, err := BuildTree(row.freq)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}

			var bb BitBuffer
			bb.PushBit(1)
			bb.PushBit(1)
			bb.PushBits(SerializeTree(root))
			bb.PushBit(0)

			decoded, consumed, err := DeserializeTree(bb, 2)
			if err != nil {
				t.Fatalf("DeserializeTree failed: %v", err)
			}
			if expect := bb.Len() - 3; consumed != expect {
				t.Errorf("wrong bits consumed: expect %d, actual %d", expect, consumed)
			}
			if diff := cmp.Diff(codeStrings(Codes(root)), codeStrings(Codes(decoded))); diff != "" {
				t.Errorf("wrong codes (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestDeserializeTree_Malformed(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 2, 'b': 1, 'c': 1})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	full := SerializeTree(root).String()

	bitsOf := func(s string) BitBuffer {
		return MakeCode(s).Bits()
	}

	type testRow struct {
		name string
		bits string
	}

	testData := [...]testRow{
		{"empty", ""},
		{"internal only", "0"},
		{"missing right subtree", full[:11]},
		{"truncated symbol", full[:len(full)-1]},
		{"invalid lead byte", "1" + "11111111"},
		{"truncated multibyte", "1" + "00000011"},
		{"duplicate leaf", "0" + "1" + "10000110" + "1" + "10000110"},
		{"deep chain of internal nodes", strings.Repeat("0", 1<<20)},
		{"too few bits for pending leaves", "0" + "0" + "1" + "10000110" + "1" + "01000110" + "1"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := DeserializeTree(bitsOf(row.bits), 0)
			if !errors.Is(err, ErrMalformedTree) {
				t.Errorf("expected ErrMalformedTree, got %v", err)
			}
		})
	}
}
