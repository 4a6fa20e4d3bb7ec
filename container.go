package huffman

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// HeaderSize is the size in bytes of the fixed part of a container.
const HeaderSize = 12

// Header holds the three size fields at the start of a container.
type Header struct {
	// CompressedSize is the total size of the container in bytes.
	CompressedSize uint32

	// HeaderSize is HeaderSize plus the size of the serialized tree in
	// bytes, i.e. the offset of the payload.
	HeaderSize uint32

	// UncompressedSize is the size of the original text in bytes.
	UncompressedSize uint32
}

// Container is a compressed text: its header, serialized tree, and encoded
// payload.  A Container is not modified after Compress returns it.
type Container struct {
	Header
	Tree    BitBuffer
	Payload BitBuffer
}

// Compress builds a Huffman code for text and returns the compressed
// Container.
//
// Returns ErrEmptyInput if text is empty, ErrInvalidText if it is not valid
// UTF-8, or ErrTooLarge if a size does not fit the container.
//
func Compress(text string) (*Container, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	if uint64(len(text)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: text is %d bytes", ErrTooLarge, len(text))
	}

	var e Encoder
	if err := e.Init(CountFrequencies(text)); err != nil {
		return nil, err
	}

	tree := SerializeTree(e.Tree())

	var payload BitBuffer
	if err := e.EncodeText(&payload, text); err != nil {
		return nil, err
	}

	headerSize := uint64(HeaderSize) + uint64(tree.ByteLen())
	compressedSize := headerSize + uint64(payload.ByteLen())
	if compressedSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: container would be %d bytes", ErrTooLarge, compressedSize)
	}

	return &Container{
		Header: Header{
			CompressedSize:   uint32(compressedSize),
			HeaderSize:       uint32(headerSize),
			UncompressedSize: uint32(len(text)),
		},
		Tree:    tree,
		Payload: payload,
	}, nil
}

// Bytes returns the serialized form of this Container.
func (c *Container) Bytes() []byte {
	var bb BitBuffer
	bb.PushUint32(c.CompressedSize)
	bb.PushUint32(c.HeaderSize)
	bb.PushUint32(c.UncompressedSize)
	bb.PushBits(c.Tree)
	bb.Pad()
	bb.PushBits(c.Payload)
	bb.Pad()
	return bb.Bytes()
}

// MarshalBinary fulfills encoding.BinaryMarshaler.
func (c *Container) MarshalBinary() ([]byte, error) {
	return c.Bytes(), nil
}

// WriteTo writes the serialized Container to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(c.Bytes()).WriteTo(w)
}

var (
	_ encoding.BinaryMarshaler = (*Container)(nil)
	_ io.WriterTo              = (*Container)(nil)
)

// ParseHeader reads and validates the size fields at the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidHeader, HeaderSize, len(data))
	}

	bb := NewBitBufferFromBytes(data[:HeaderSize])
	h.CompressedSize, _ = bb.Uint32At(0)
	h.HeaderSize, _ = bb.Uint32At(32)
	h.UncompressedSize, _ = bb.Uint32At(64)

	if h.HeaderSize <= HeaderSize {
		return h, fmt.Errorf("%w: header size %d leaves no room for a tree", ErrInvalidHeader, h.HeaderSize)
	}
	if h.CompressedSize < h.HeaderSize {
		return h, fmt.Errorf("%w: compressed size %d < header size %d", ErrInvalidHeader, h.CompressedSize, h.HeaderSize)
	}
	if h.UncompressedSize == 0 {
		return h, fmt.Errorf("%w: uncompressed size is 0", ErrInvalidHeader)
	}
	return h, nil
}

// Decompress reconstructs the text stored in a serialized Container.
//
// Returns ErrInvalidHeader if the size fields are missing or inconsistent,
// ErrMalformedTree if the tree cannot be read, ErrTruncatedPayload if the
// payload ends early, or ErrCorruptPayload if the payload does not match the
// tree.
//
func Decompress(data []byte) (string, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return "", err
	}

	treeEnd := len(data)
	if treeEnd > int(h.HeaderSize) {
		treeEnd = int(h.HeaderSize)
	}

	var d Decoder
	consumed, err := d.Init(NewBitBufferFromBytes(data[:treeEnd]), 8*HeaderSize)
	if err != nil {
		return "", err
	}
	if want := uint32(HeaderSize + (consumed+7)/8); want != h.HeaderSize {
		return "", fmt.Errorf("%w: tree ends at byte %d, header size is %d", ErrInvalidHeader, want, h.HeaderSize)
	}

	if uint64(len(data)) < uint64(h.CompressedSize) {
		return "", fmt.Errorf("%w: container is %d bytes, expected %d", ErrTruncatedPayload, len(data), h.CompressedSize)
	}

	bb := NewBitBufferFromBytes(data[:h.CompressedSize])
	pos := 8 * int(h.HeaderSize)
	want := int(h.UncompressedSize)

	// Every payload bit yields at most one symbol of at most utf8.UTFMax
	// bytes, so the header's size is only trusted up to that bound.
	reserve := want
	if limit := utf8.UTFMax * (bb.Len() - pos); reserve > limit {
		reserve = limit
	}

	var sb strings.Builder
	sb.Grow(reserve)
	for sb.Len() < want {
		var symbol Symbol
		symbol, pos, err = d.Decode(bb, pos)
		if err != nil {
			return "", fmt.Errorf("after %d of %d bytes: %w", sb.Len(), want, err)
		}
		sb.WriteRune(rune(symbol))
	}
	// A multi-byte symbol can step past want without landing on it.
	if sb.Len() != want {
		return "", fmt.Errorf("%w: decoded %d bytes, expected %d", ErrCorruptPayload, sb.Len(), want)
	}
	return sb.String(), nil
}
