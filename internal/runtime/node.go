package runtime

import "vapor.dev/pkg/vapor/internal/dom"

// CreateTextNode creates a text node showing values.
func CreateTextNode(doc *dom.Document, values ...any) dom.Node {
	node := doc.CreateTextNode("")
	if len(values) > 0 {
		SetText(node, values...)
	}

	return node
}

// CreateDynamicTextNode creates a text node whose content an effect
// recomputes from getter.
func CreateDynamicTextNode(doc *dom.Document, s Scheduler, getter func() []any) dom.Node {
	node := doc.CreateTextNode("")

	RenderEffect(s, func() {
		SetText(node, getter()...)
	})

	return node
}

// Insert places the nodes of block into parent before anchor, or at the
// end when anchor is nil.
func Insert(block Block, parent dom.Element, anchor dom.Node) {
	for _, n := range NormalizeBlock(block) {
		parent.InsertBefore(n, anchor)
	}
}

// Prepend places the nodes of blocks at the start of parent, keeping
// their order.
func Prepend(parent dom.Element, blocks ...Block) {
	parent.Prepend(NormalizeBlock(BlockList(blocks))...)
}

// Remove detaches the nodes of block from the tree.
func Remove(block Block) {
	for _, n := range NormalizeBlock(block) {
		n.Remove()
	}
}

// Template parses markup once and returns a constructor cloning its
// first node.
func Template(doc *dom.Document, markup string) (func() dom.Node, error) {
	nodes, err := doc.ParseFragment(markup)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return func() dom.Node { return doc.CreateTextNode("") }, nil
	}

	root := nodes[0]

	return func() dom.Node { return doc.Clone(root) }, nil
}

// Child returns the i-th child of node, or nil.
func Child(node dom.Node, i int) dom.Node {
	el, ok := node.(dom.Element)
	if !ok {
		return nil
	}

	children := el.ChildNodes()
	if i < 0 || i >= len(children) {
		return nil
	}

	return children[i]
}
