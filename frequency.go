package huffman

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FrequencyTable maps each Symbol of a text to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// CountFrequencies counts the symbols of text in a single pass.  Each rune
// is one symbol; text is expected to be valid UTF-8.
func CountFrequencies(text string) FrequencyTable {
	freq := make(FrequencyTable)
	for _, ch := range text {
		freq[Symbol(ch)]++
	}
	return freq
}

// Symbols returns the symbols of this table in ascending order.
func (freq FrequencyTable) Symbols() []Symbol {
	symbols := maps.Keys(freq)
	slices.Sort(symbols)
	return symbols
}

// Total returns the sum of all counts.
func (freq FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range freq {
		sum += n
	}
	return sum
}
