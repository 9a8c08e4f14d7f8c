package runtime

import "vapor.dev/pkg/vapor/internal/dom"

// Block is what a component or branch renders: a node, a fragment, a
// component instance or a list of blocks.
type Block interface {
	isBlock()
}

// NodeBlock is a single node.
type NodeBlock struct {
	dom.Node
}

// Fragment is a node list with an optional trailing anchor.
type Fragment struct {
	Nodes  Block
	Anchor dom.Node
}

// BlockList is an ordered list of blocks.
type BlockList []Block

func (NodeBlock) isBlock() {}
func (*Fragment) isBlock() {}
func (*Instance) isBlock() {}
func (BlockList) isBlock() {}

// Nodes wraps nodes as a block list.
func Nodes(nodes ...dom.Node) BlockList {
	out := make(BlockList, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NodeBlock{n})
	}

	return out
}

// NormalizeBlock flattens a block into its nodes in document order. A
// fragment's anchor comes after its nodes.
func NormalizeBlock(block Block) []dom.Node {
	var nodes []dom.Node

	switch b := block.(type) {
	case NodeBlock:
		if b.Node != nil {
			nodes = append(nodes, b.Node)
		}
	case BlockList:
		for _, child := range b {
			nodes = append(nodes, NormalizeBlock(child)...)
		}
	case *Instance:
		if b != nil && b.Block != nil {
			nodes = append(nodes, NormalizeBlock(b.Block)...)
		}
	case *Fragment:
		if b == nil {
			break
		}

		if b.Nodes != nil {
			nodes = append(nodes, NormalizeBlock(b.Nodes)...)
		}

		if b.Anchor != nil {
			nodes = append(nodes, b.Anchor)
		}
	}

	return nodes
}

// GetFirstNode returns the single leading node of a block. It returns
// nil for component instances and for lists with more than one entry,
// where callers position by anchor instead.
func GetFirstNode(block Block) dom.Node {
	switch b := block.(type) {
	case NodeBlock:
		return b.Node
	case BlockList:
		if len(b) == 1 {
			return GetFirstNode(b[0])
		}
	case *Fragment:
		if b != nil {
			return GetFirstNode(b.Nodes)
		}
	}

	return nil
}

// IsValidBlock reports whether the block renders any node that is not a
// comment placeholder.
func IsValidBlock(block Block) bool {
	for _, n := range NormalizeBlock(block) {
		if n.NodeType() != dom.CommentNode {
			return true
		}
	}

	return false
}

// FindFirstRootElement returns the instance's first node when it is an
// element.
func FindFirstRootElement(inst *Instance) dom.Element {
	el, _ := GetFirstNode(inst.Block).(dom.Element)

	return el
}
