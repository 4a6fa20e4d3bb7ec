package huffman

import (
	"fmt"
	"strconv"
)

// Code represents the sequence of bits that identifies one leaf of a
// Huffman tree: 0 for each step to the left, 1 for each step to the right.
type Code struct {
	bits BitBuffer
}

// MakeCode is a convenience function that constructs a Code from a string
// of '0' and '1' characters.
func MakeCode(s string) Code {
	var hc Code
	for _, ch := range s {
		switch ch {
		case '0':
			hc.bits.PushBit(0)
		case '1':
			hc.bits.PushBit(1)
		default:
			panic(fmt.Errorf("invalid character %q in code %q", ch, s))
		}
	}
	return hc
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return hc.bits.Len()
}

// Bits returns a copy of the bits of this Code.
func (hc Code) Bits() BitBuffer {
	return hc.bits.Clone()
}

// HasPrefix returns true if prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size() > hc.Size() {
		return false
	}
	for i := 0; i < prefix.Size(); i++ {
		if hc.bits.bitAt(i) != prefix.bits.bitAt(i) {
			return false
		}
	}
	return true
}

// Equal returns true if both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return hc.Size() == other.Size() && hc.HasPrefix(other)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.bits.String())
}

var _ fmt.Stringer = Code{}

func (hc Code) appendBit(bit byte) Code {
	out := Code{bits: hc.bits.Clone()}
	out.bits.PushBit(bit)
	return out
}
