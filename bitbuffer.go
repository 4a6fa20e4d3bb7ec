package huffman

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// BitBuffer is an append-only sequence of bits packed into bytes.  Bit r of
// byte i holds bit number 8*i+r, i.e. bits are packed least significant bit
// first.
//
// The zero value is an empty BitBuffer ready to use.
type BitBuffer struct {
	bytes []byte
	size  int
}

// NewBitBufferFromBytes returns a BitBuffer holding all 8*len(data) bits of
// data.  The BitBuffer takes ownership of data.
func NewBitBufferFromBytes(data []byte) BitBuffer {
	return BitBuffer{bytes: data, size: 8 * len(data)}
}

// Len returns the number of bits in the buffer.
func (bb BitBuffer) Len() int {
	return bb.size
}

// ByteLen returns the number of bytes needed to hold the buffer, i.e.
// ceil(Len() / 8).
func (bb BitBuffer) ByteLen() int {
	return (bb.size + 7) >> 3
}

// Bytes returns the packed bytes.  Unused high bits of the final byte are
// zero.
func (bb BitBuffer) Bytes() []byte {
	return bb.bytes[:bb.ByteLen()]
}

// PushBit appends one bit, which must be 0 or 1.
func (bb *BitBuffer) PushBit(bit byte) {
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)

	i, r := bb.size>>3, uint(bb.size&7)
	if i == len(bb.bytes) {
		bb.bytes = append(bb.bytes, 0)
	}
	bb.bytes[i] |= bit << r
	bb.size++
}

// PushBits appends every bit of other, in order.
func (bb *BitBuffer) PushBits(other BitBuffer) {
	if bb.size&7 == 0 {
		bb.bytes = append(bb.bytes[:bb.ByteLen()], other.Bytes()...)
		bb.size += other.size
		if r := uint(bb.size & 7); r != 0 {
			// other may carry stray bits past its end.
			bb.bytes[len(bb.bytes)-1] &= byte(1)<<r - 1
		}
		return
	}
	for i := 0; i < other.size; i++ {
		bb.PushBit(other.bitAt(i))
	}
}

// PushByte appends the 8 bits of x, least significant bit first.
func (bb *BitBuffer) PushByte(x byte) {
	for k := uint(0); k < 8; k++ {
		bb.PushBit((x >> k) & 1)
	}
}

// PushUint32 appends the 32 bits of x, least significant bit first.  When
// the buffer is byte-aligned this is the little-endian encoding of x.
func (bb *BitBuffer) PushUint32(x uint32) {
	for k := uint(0); k < 32; k++ {
		bb.PushBit(byte((x >> k) & 1))
	}
}

// Clone returns a copy of this BitBuffer that shares no memory with it.
func (bb BitBuffer) Clone() BitBuffer {
	out := BitBuffer{size: bb.size}
	out.bytes = append(out.bytes, bb.Bytes()...)
	return out
}

// Pad appends zero bits until Len() is a multiple of 8.
func (bb *BitBuffer) Pad() {
	bb.size = bb.ByteLen() << 3
}

// Bit returns the bit at index i.
func (bb BitBuffer) Bit(i int) (byte, error) {
	if i < 0 || i >= bb.size {
		return 0, fmt.Errorf("bit %d of %d: %w", i, bb.size, ErrOutOfRange)
	}
	return bb.bitAt(i), nil
}

// ByteAt returns the 8 bits starting at index i, least significant bit
// first.
func (bb BitBuffer) ByteAt(i int) (byte, error) {
	x, err := bb.uintAt(i, 8)
	return byte(x), err
}

// Uint32At returns the 32 bits starting at index i, least significant bit
// first.
func (bb BitBuffer) Uint32At(i int) (uint32, error) {
	x, err := bb.uintAt(i, 32)
	return uint32(x), err
}

// String returns the bits as a string of '0' and '1' characters, in buffer
// order.  It is meant for debugging.
func (bb BitBuffer) String() string {
	var sb strings.Builder
	sb.Grow(bb.size)
	for i := 0; i < bb.size; i++ {
		sb.WriteByte('0' + bb.bitAt(i))
	}
	return sb.String()
}

func (bb BitBuffer) bitAt(i int) byte {
	return (bb.bytes[i>>3] >> uint(i&7)) & 1
}

func (bb BitBuffer) uintAt(i int, width int) (uint64, error) {
	if i < 0 || i+width > bb.size {
		return 0, fmt.Errorf("bits %d..%d of %d: %w", i, i+width, bb.size, ErrOutOfRange)
	}
	var x uint64
	for k := 0; k < width; k++ {
		x |= uint64(bb.bitAt(i+k)) << uint(k)
	}
	return x, nil
}

var _ fmt.Stringer = BitBuffer{}
