package huffman

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCountFrequencies(t *testing.T) {
	type testRow struct {
		name   string
		text   string
		expect FrequencyTable
	}

	testData := [...]testRow{
		{"empty", "", FrequencyTable{}},
		{"aabc", "aabc", FrequencyTable{'a': 2, 'b': 1, 'c': 1}},
		{"single", "aaaa", FrequencyTable{'a': 4}},
		{"unicode", "héé✓", FrequencyTable{'h': 1, 'é': 2, '✓': 1}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := CountFrequencies(row.text)
			if diff := cmp.Diff(row.expect, actual); diff != "" {
				t.Errorf("wrong frequencies (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestFrequencyTable_Symbols(t *testing.T) {
	freq := CountFrequencies("the quick brown fox")
	expect := []Symbol{' ', 'b', 'c', 'e', 'f', 'h', 'i', 'k', 'n', 'o', 'q', 'r', 't', 'u', 'w', 'x'}
	if diff := cmp.Diff(expect, freq.Symbols()); diff != "" {
		t.Errorf("wrong symbols (-expect +actual):\n%s", diff)
	}
	if expect, actual := uint64(19), freq.Total(); expect != actual {
		t.Errorf("wrong total: expect %d, actual %d", expect, actual)
	}
}
