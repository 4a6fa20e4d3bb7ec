package huffman

import (
	"container/heap"
	"fmt"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf has a Symbol and no children.
// An internal node has no Symbol of its own (InvalidSymbol) and a Weight
// equal to the sum of its children's weights.
//
// The root of a single-symbol tree is an internal node with only a Left
// child, so that the lone symbol still has a 1-bit code.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true if this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Child returns Left for bit 0 and Right for bit 1.
func (n *Node) Child(bit byte) *Node {
	if bit == 0 {
		return n.Left
	}
	return n.Right
}

// BuildTree constructs a Huffman tree from a table of symbol frequencies by
// repeatedly combining the two lowest-weight nodes.  Ties are broken by
// insertion order: leaves are inserted in ascending symbol order, and each
// combined node is inserted after everything already in the queue.
//
// The first node popped becomes the left child and the second the right.
//
func BuildTree(freq FrequencyTable) (*Node, error) {
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := freq.Symbols()
	h := nodeHeap{list: make([]heapItem, 0, len(symbols))}
	for _, symbol := range symbols {
		assert.Assertf(symbol.IsValid(), "symbol %d is not a valid rune", int32(symbol))
		h.list = append(h.list, heapItem{
			node: &Node{Symbol: symbol, Weight: freq[symbol]},
			seq:  h.nextSeq,
		})
		h.nextSeq++
	}
	h.Init()

	if h.Len() == 1 {
		leaf := heap.Pop(&h).(heapItem).node
		return &Node{Symbol: InvalidSymbol, Weight: leaf.Weight, Left: leaf}, nil
	}

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem).node
		b := heap.Pop(&h).(heapItem).node

		// Saturate rather than wrap; only reachable with >2^64 symbols.
		weight := a.Weight + b.Weight
		if weight < a.Weight {
			weight = ^uint64(0)
		}

		h.PushNode(&Node{Symbol: InvalidSymbol, Weight: weight, Left: a, Right: b})
	}
	return heap.Pop(&h).(heapItem).node, nil
}

// Codes walks the tree depth-first and returns the Code of every leaf.
func Codes(root *Node) map[Symbol]Code {
	codes := make(map[Symbol]Code)
	if root == nil {
		return codes
	}

	var walk func(n *Node, hc Code)
	walk = func(n *Node, hc Code) {
		if n.IsLeaf() {
			assert.Assertf(hc.Size() != 0, "leaf %v has an empty code", n.Symbol)
			codes[n.Symbol] = hc
			return
		}
		if n.Left != nil {
			walk(n.Left, hc.appendBit(0))
		}
		if n.Right != nil {
			walk(n.Right, hc.appendBit(1))
		}
	}

	if root.IsLeaf() {
		// A bare leaf is treated like the synthesized single-symbol root.
		codes[root.Symbol] = MakeCode("0")
		return codes
	}
	walk(root, Code{})
	return codes
}

// SerializeTree writes the tree in pre-order: a 0 bit for an internal node
// followed by its left and right subtrees, or a 1 bit for a leaf followed by
// the UTF-8 encoding of its symbol, 8 bits per byte.  The stream is
// self-delimiting.
//
// The synthesized root of a single-symbol tree is written as its lone leaf.
//
func SerializeTree(root *Node) BitBuffer {
	var bb BitBuffer
	if root == nil {
		return bb
	}
	if root.Right == nil && root.Left != nil {
		root = root.Left
	}

	var buf [utf8.UTFMax]byte
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			bb.PushBit(1)
			size := utf8.EncodeRune(buf[:], rune(n.Symbol))
			for _, x := range buf[:size] {
				bb.PushByte(x)
			}
			return
		}
		assert.Assertf(n.Left != nil && n.Right != nil, "internal node is missing a child")
		bb.PushBit(0)
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)
	return bb
}

// DeserializeTree reads a tree written by SerializeTree, starting at bit
// index start.  It returns the root and the number of bits consumed.
//
// Leaf weights are not stored, so every Weight of the result is 0.
//
func DeserializeTree(bb BitBuffer, start int) (*Node, int, error) {
	pos := start
	seen := make(map[Symbol]struct{})

	readBit := func() (byte, error) {
		bit, err := bb.Bit(pos)
		if err != nil {
			return 0, fmt.Errorf("%w: tree ends at bit %d", ErrMalformedTree, pos)
		}
		pos++
		return bit, nil
	}

	readSymbol := func() (Symbol, error) {
		var buf [utf8.UTFMax]byte
		at := pos
		first, err := bb.ByteAt(pos)
		if err != nil {
			return InvalidSymbol, fmt.Errorf("%w: leaf symbol at bit %d is truncated", ErrMalformedTree, at)
		}
		pos += 8
		buf[0] = first
		size := utf8SequenceLength(first)
		if size == 0 {
			return InvalidSymbol, fmt.Errorf("%w: invalid UTF-8 lead byte 0x%02x at bit %d", ErrMalformedTree, first, at)
		}
		for i := 1; i < size; i++ {
			x, err := bb.ByteAt(pos)
			if err != nil {
				return InvalidSymbol, fmt.Errorf("%w: leaf symbol at bit %d is truncated", ErrMalformedTree, at)
			}
			pos += 8
			buf[i] = x
		}
		ch, n := utf8.DecodeRune(buf[:size])
		if ch == utf8.RuneError && n <= 1 {
			return InvalidSymbol, fmt.Errorf("%w: invalid UTF-8 symbol at bit %d", ErrMalformedTree, at)
		}
		symbol := Symbol(ch)
		if _, found := seen[symbol]; found {
			return InvalidSymbol, fmt.Errorf("%w: duplicate leaf %v at bit %d", ErrMalformedTree, symbol, at)
		}
		seen[symbol] = struct{}{}
		return symbol, nil
	}

	// Internal nodes still waiting for a child.  Every pending subtree
	// needs at least one leaf, i.e. minLeafBits more bits, which bounds the
	// stack by the input size.
	const minLeafBits = 1 + 8
	var stack []*Node
	var root *Node
	pending := 1
	for pending > 0 {
		if pending > (bb.Len()-pos)/minLeafBits {
			return nil, 0, fmt.Errorf("%w: %d subtrees pending at bit %d, %d bits left", ErrMalformedTree, pending, pos, bb.Len()-pos)
		}

		bit, err := readBit()
		if err != nil {
			return nil, 0, err
		}
		pending--

		n := &Node{Symbol: InvalidSymbol}
		if bit == 1 {
			n.Symbol, err = readSymbol()
			if err != nil {
				return nil, 0, err
			}
		}

		if len(stack) == 0 {
			root = n
		} else if top := stack[len(stack)-1]; top.Left == nil {
			top.Left = n
		} else {
			top.Right = n
			stack[len(stack)-1] = nil
			stack = stack[:len(stack)-1]
		}

		if bit == 0 {
			stack = append(stack, n)
			pending += 2
		}
	}

	if root.IsLeaf() {
		root = &Node{Symbol: InvalidSymbol, Left: root}
	}
	return root, pos - start, nil
}

// utf8SequenceLength returns the length of the UTF-8 sequence introduced by
// lead byte x, or 0 if x cannot start a sequence.
func utf8SequenceLength(x byte) int {
	switch {
	case x < 0x80:
		return 1
	case x>>5 == 0x06:
		return 2
	case x>>4 == 0x0e:
		return 3
	case x>>3 == 0x1e:
		return 4
	default:
		return 0
	}
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list    []heapItem
	nextSeq uint64
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) PushNode(n *Node) {
	heap.Push(h, heapItem{node: n, seq: h.nextSeq})
	h.nextSeq++
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
