// Package huffman implements a lossless text compressor built on Huffman
// codes.
//
// Compress counts the symbols (runes) of a text, builds a Huffman tree by
// repeatedly combining the two lightest nodes, and packs the serialized tree
// and the encoded text into a Container.  Decompress reverses the process.
//
// Container layout (all sizes are little-endian uint32):
//
//     bytes[0..4]    compressed file size
//     bytes[4..8]    header size
//     bytes[8..12]   uncompressed file size, in bytes of UTF-8
//     bytes[12..H]   serialized tree, zero-padded to a byte boundary
//     bytes[H..C]    encoded payload, zero-padded to a byte boundary
//
// Bits are packed least significant bit first: bit r of byte i is bit
// number 8*i+r of the stream.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
