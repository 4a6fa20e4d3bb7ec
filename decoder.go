package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder implements a decoder that walks a Huffman tree one bit at a time.
type Decoder struct {
	root      *Node
	treeSize  int
	minSize   int
	maxSize   int
	numLeaves int
}

// Init initializes this Decoder from a tree serialized by SerializeTree,
// starting at bit index start.  Returns the number of bits consumed.
//
func (d *Decoder) Init(bb BitBuffer, start int) (int, error) {
	root, consumed, err := DeserializeTree(bb, start)
	if err != nil {
		return 0, err
	}
	d.InitTree(root)
	d.treeSize = consumed
	return consumed, nil
}

// InitTree initializes this Decoder from an already built tree.
func (d *Decoder) InitTree(root *Node) {
	*d = Decoder{root: root}

	type item struct {
		n     *Node
		depth int
	}
	stack := []item{{root, 0}}
	for len(stack) != 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n == nil {
			continue
		}
		if it.n.IsLeaf() {
			if d.numLeaves == 0 || d.minSize > it.depth {
				d.minSize = it.depth
			}
			if d.maxSize < it.depth {
				d.maxSize = it.depth
			}
			d.numLeaves++
			continue
		}
		stack = append(stack, item{it.n.Right, it.depth + 1}, item{it.n.Left, it.depth + 1})
	}
}

// Decode walks the tree from the root, reading bits of bb starting at index
// pos, until it reaches a leaf.  It returns the leaf's Symbol and the index
// of the first unread bit.
//
// Returns ErrTruncatedPayload if bb ends before a leaf is reached, and
// ErrCorruptPayload if a bit selects a child that does not exist.
//
func (d Decoder) Decode(bb BitBuffer, pos int) (Symbol, int, error) {
	n := d.root
	if n == nil {
		return InvalidSymbol, pos, fmt.Errorf("%w: decoder has no tree", ErrCorruptPayload)
	}
	for !n.IsLeaf() {
		bit, err := bb.Bit(pos)
		if err != nil {
			return InvalidSymbol, pos, fmt.Errorf("%w: payload ends at bit %d", ErrTruncatedPayload, pos)
		}
		next := n.Child(bit)
		if next == nil {
			return InvalidSymbol, pos, fmt.Errorf("%w: no child for bit %d at bit %d", ErrCorruptPayload, bit, pos)
		}
		n = next
		pos++
	}
	return n.Symbol, pos, nil
}

// Tree returns the root of the Huffman tree behind this Decoder.
func (d Decoder) Tree() *Node {
	return d.root
}

// TreeSize is the number of bits the serialized tree occupied, or 0 if the
// Decoder was initialized with InitTree.
func (d Decoder) TreeSize() int {
	return d.treeSize
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	return d.maxSize
}

// NumSymbols is the number of symbols in the code's alphabet.
func (d Decoder) NumSymbols() int {
	return d.numLeaves
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)

	codes := Codes(d.root)
	keys := make(byCode, 0, len(codes))
	symbols := make(map[string]Symbol, len(codes))
	for symbol, hc := range codes {
		keys = append(keys, hc)
		symbols[hc.bits.String()] = symbol
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %v\n", hc, symbols[hc.bits.String()])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size() != b.Size() {
		return a.Size() < b.Size()
	}
	return a.bits.String() < b.bits.String()
}

var _ sort.Interface = byCode(nil)

// }}}
