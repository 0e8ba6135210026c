package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a binary code tree stored as an arena of nodes.  Children are
// referenced by index, so the tree holds no pointers and is released as a
// single slice.
type Tree struct {
	nodes []treeNode
	root  int32
}

type treeNode struct {
	weight uint64
	left   int32
	right  int32
	symbol Symbol
	leaf   bool
}

const noNode = int32(-1)

func (node treeNode) child(bit uint) int32 {
	if bit == 0 {
		return node.left
	}
	return node.right
}

// BuildTree constructs a Huffman tree from the given frequencies by
// repeatedly merging the two lowest-weight nodes.  The first node removed
// becomes the left child and the second becomes the right child.
//
// Ties are broken by a total order so that the same frequencies always yield
// the same tree: lower weight first, then leaves before internal nodes, then
// leaves by ascending symbol and internal nodes by order of creation.
//
// An empty table yields an empty tree.  A table with one symbol yields a tree
// whose root is that symbol's leaf.
func BuildTree(freq FrequencyTable) Tree {
	t := Tree{root: noNode}

	numLeaves := freq.Len()
	if numLeaves == 0 {
		return t
	}

	// Step 1: one leaf per symbol, then build a minheap over them.

	t.nodes = make([]treeNode, 0, 2*numLeaves-1)
	h := nodeHeap{tree: &t, list: make([]int32, 0, numLeaves)}
	for _, symbol := range freq.Symbols() {
		h.list = append(h.list, int32(len(t.nodes)))
		t.nodes = append(t.nodes, treeNode{
			weight: freq.Count(symbol),
			left:   noNode,
			right:  noNode,
			symbol: symbol,
			leaf:   true,
		})
	}
	h.Init()

	// Step 2: pop two, merge, push the merged node back.

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		index := int32(len(t.nodes))
		t.nodes = append(t.nodes, treeNode{
			weight: addSaturating(t.nodes[a].weight, t.nodes[b].weight),
			left:   a,
			right:  b,
		})
		heap.Push(&h, index)
	}

	t.root = heap.Pop(&h).(int32)
	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(t.nodes), numLeaves)
	return t
}

// Len returns the number of nodes in the tree.
func (t Tree) Len() int {
	return len(t.nodes)
}

// Weight returns the weight of the root, i.e. the total symbol count.
func (t Tree) Weight() uint64 {
	if t.root == noNode {
		return 0
	}
	return t.nodes[t.root].weight
}

// WeightedLength returns the sum over all leaves of weight × depth, which is
// the number of payload bits the tree's codes produce for the input it was
// built from.  A lone root leaf counts as depth 1, matching its 1-bit code.
func (t Tree) WeightedLength() uint64 {
	if t.root == noNode {
		return 0
	}
	if t.nodes[t.root].leaf {
		return t.nodes[t.root].weight
	}

	type stackItem struct {
		index int32
		depth uint64
	}

	var total uint64
	stack := []stackItem{{t.root, 0}}
	for len(stack) != 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.nodes[item.index]
		if node.leaf {
			total = addSaturating(total, node.weight*item.depth)
			continue
		}
		stack = append(stack, stackItem{node.right, item.depth + 1}, stackItem{node.left, item.depth + 1})
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in arena order.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, node := range t.nodes {
		if node.leaf {
			fmt.Fprintf(&buf, "\t%d = leaf{%d, %d}\n", index, node.symbol, node.weight)
		} else {
			fmt.Fprintf(&buf, "\t%d = node{%d, %d, %d}\n", index, node.weight, node.left, node.right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	ai, bi := h.list[i], h.list[j]
	a, b := h.tree.nodes[ai], h.tree.nodes[bi]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.leaf != b.leaf {
		return a.leaf
	}
	if a.leaf {
		return a.symbol < b.symbol
	}
	return ai < bi
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
