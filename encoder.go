package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Encoder implements an encoder for Huffman codes built from symbol
// frequencies.
type Encoder struct {
	root    *Node
	codes   map[Symbol]Code
	minSize int
	maxSize int
}

// Init initializes this Encoder from a table of symbol frequencies.  Every
// symbol with a non-zero count receives a Code.  Returns ErrEmptyInput if no
// symbol has a non-zero count.
//
func (e *Encoder) Init(freq FrequencyTable) error {
	nonZero := make(FrequencyTable, len(freq))
	for symbol, count := range freq {
		if count != 0 {
			nonZero[symbol] = count
		}
	}

	root, err := BuildTree(nonZero)
	if err != nil {
		return err
	}

	codes := Codes(root)
	assert.Assertf(len(codes) == len(nonZero), "got %d codes for %d symbols", len(codes), len(nonZero))

	var minSize, maxSize int
	first := true
	for _, hc := range codes {
		size := hc.Size()
		if first {
			first = false
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	*e = Encoder{
		root:    root,
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Encode returns the Code for a Symbol.  The second return value is false
// if the symbol is not in this code's alphabet.
func (e Encoder) Encode(symbol Symbol) (Code, bool) {
	hc, found := e.codes[symbol]
	return hc, found
}

// EncodeText appends the codes of every symbol of text, in order, to bb.
func (e Encoder) EncodeText(bb *BitBuffer, text string) error {
	for _, ch := range text {
		hc, found := e.codes[Symbol(ch)]
		if !found {
			return fmt.Errorf("symbol %v is not in the code's alphabet", Symbol(ch))
		}
		bb.PushBits(hc.bits)
	}
	return nil
}

// Tree returns the root of the Huffman tree behind this Encoder.
func (e Encoder) Tree() *Node {
	return e.root
}

// MinSize is the bit length of the shortest code.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// Symbols returns the alphabet of this code in ascending order.
func (e Encoder) Symbols() []Symbol {
	symbols := maps.Keys(e.codes)
	slices.Sort(symbols)
	return symbols
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
