// Package dom is a small in-memory node tree the runtime patches. Nodes
// wrap golang.org/x/net/html nodes and carry their own write metadata.
package dom

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Namespace is an element namespace URI.
type Namespace string

// Element namespaces.
const (
	NamespaceHTML   Namespace = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    Namespace = "http://www.w3.org/2000/svg"
	NamespaceMathML Namespace = "http://www.w3.org/1998/Math/MathML"
)

// NodeType mirrors the DOM nodeType values.
type NodeType int

// Node types.
const (
	ElementNode NodeType = 1
	TextNode    NodeType = 3
	CommentNode NodeType = 8
)

// Node is any node of the tree.
type Node interface {
	NodeType() NodeType
	// Meta is the node's write metadata.
	Meta() *Metadata
	// Raw is the underlying html node.
	Raw() *html.Node
	Owner() *Document
	ParentNode() Node
	NextSibling() Node
	TextContent() string
	SetTextContent(text string)
	// Remove detaches the node from its parent, if any.
	Remove()
}

// Element is an element node.
type Element interface {
	Node
	// TagName is the upper-case tag name for HTML elements and the
	// qualified name as written for other namespaces.
	TagName() string
	LocalName() string
	Namespace() Namespace

	GetAttribute(name string) (string, bool)
	HasAttribute(name string) bool
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	AttributeNames() []string

	// HasProperty reports `name in el`.
	HasProperty(name string) bool
	Property(name string) any
	// SetProperty assigns a property with DOM coercion rules. It fails
	// for read-only and out-of-range assignments.
	SetProperty(name string, value any) error

	InnerHTML() string
	SetInnerHTML(markup string) error
	OuterHTML() string

	ChildNodes() []Node
	Append(nodes ...Node)
	Prepend(nodes ...Node)
	InsertBefore(node, ref Node)

	SetExpando(key string, value any)
	Expando(key string) (any, bool)

	// SetListener replaces the handler of an event; nil removes it.
	SetListener(event string, handler any)
	Listener(event string) any
	// Dispatch calls the handler of an event and returns how many
	// functions ran.
	Dispatch(event string, arg any) int
}

// Document creates nodes and maps html nodes back to their wrappers.
type Document struct {
	nodes map[*html.Node]Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{nodes: make(map[*html.Node]Node)}
}

// CreateElement creates an HTML element, or an SVG/MathML element for
// the tags that only exist there.
func (d *Document) CreateElement(tag string) Element {
	switch tag {
	case "svg":
		return d.CreateElementNS(NamespaceSVG, tag)
	case "math":
		return d.CreateElementNS(NamespaceMathML, tag)
	}

	return d.CreateElementNS(NamespaceHTML, tag)
}

// CreateElementNS creates an element in a namespace.
func (d *Document) CreateElementNS(ns Namespace, tag string) Element {
	n := &html.Node{Type: html.ElementNode, Data: tag}

	switch ns {
	case NamespaceSVG:
		n.Namespace = "svg"
	case NamespaceMathML:
		n.Namespace = "math"
	default:
		n.Data = strings.ToLower(tag)
		n.DataAtom = atom.Lookup([]byte(n.Data))
	}

	return d.Wrap(n).(Element)
}

// CreateTextNode creates a text node.
func (d *Document) CreateTextNode(data string) Node {
	return d.Wrap(&html.Node{Type: html.TextNode, Data: data})
}

// CreateComment creates a comment node.
func (d *Document) CreateComment(data string) Node {
	return d.Wrap(&html.Node{Type: html.CommentNode, Data: data})
}

// Wrap returns the wrapper of n, creating it on first use.
func (d *Document) Wrap(n *html.Node) Node {
	if n == nil {
		return nil
	}

	if w, ok := d.nodes[n]; ok {
		return w
	}

	var w Node

	base := baseNode{doc: d, n: n}

	switch n.Type {
	case html.ElementNode:
		w = &element{baseNode: base}
	default:
		w = &charNode{baseNode: base}
	}

	d.nodes[n] = w

	return w
}

// ParseFragment parses markup in a <template> context and returns the
// top-level nodes.
func (d *Document) ParseFragment(markup string) ([]Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template}

	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Node, 0, len(parsed))
	for _, n := range parsed {
		out = append(out, d.Wrap(n))
	}

	return out, nil
}

// Clone deep-copies a node. Metadata, expandos and listeners are not
// copied.
func (d *Document) Clone(node Node) Node {
	return d.Wrap(cloneHTML(node.Raw()))
}

func cloneHTML(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneHTML(child))
	}

	return c
}

type baseNode struct {
	Metadata

	doc *Document
	n   *html.Node
}

func (b *baseNode) Meta() *Metadata   { return &b.Metadata }
func (b *baseNode) Raw() *html.Node   { return b.n }
func (b *baseNode) Owner() *Document  { return b.doc }
func (b *baseNode) ParentNode() Node  { return b.doc.Wrap(b.n.Parent) }
func (b *baseNode) NextSibling() Node { return b.doc.Wrap(b.n.NextSibling) }
func (b *baseNode) Remove()           { detach(b.n) }
func (b *baseNode) String() string    { return render(b.n) }

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func render(n *html.Node) string {
	var buf bytes.Buffer
	// rendering into a buffer only fails for malformed trees
	_ = html.Render(&buf, n)

	return buf.String()
}

// charNode is a text or comment node.
type charNode struct {
	baseNode
}

func (c *charNode) NodeType() NodeType {
	if c.n.Type == html.CommentNode {
		return CommentNode
	}

	return TextNode
}

func (c *charNode) TextContent() string        { return c.n.Data }
func (c *charNode) SetTextContent(text string) { c.n.Data = text }

type element struct {
	baseNode

	props     map[string]any
	expandos  map[string]any
	listeners map[string]any
}

func (e *element) NodeType() NodeType { return ElementNode }

func (e *element) TagName() string {
	if e.n.Namespace == "" {
		return strings.ToUpper(e.n.Data)
	}

	return e.n.Data
}

func (e *element) LocalName() string { return e.n.Data }

func (e *element) Namespace() Namespace {
	switch e.n.Namespace {
	case "svg":
		return NamespaceSVG
	case "math":
		return NamespaceMathML
	}

	return NamespaceHTML
}

// attrName lower-cases names on HTML elements, where attribute names
// are case-insensitive.
func (e *element) attrName(name string) string {
	if e.n.Namespace == "" {
		return strings.ToLower(name)
	}

	return name
}

func (e *element) GetAttribute(name string) (string, bool) {
	name = e.attrName(name)
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}

	return "", false
}

func (e *element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)

	return ok
}

func (e *element) SetAttribute(name, value string) {
	name = e.attrName(name)
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr[i].Val = value

			return
		}
	}

	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *element) RemoveAttribute(name string) {
	name = e.attrName(name)
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)

			return
		}
	}
}

func (e *element) AttributeNames() []string {
	names := make([]string, 0, len(e.n.Attr))
	for _, a := range e.n.Attr {
		names = append(names, a.Key)
	}

	sort.Strings(names)

	return names
}

func (e *element) TextContent() string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(e.n)

	return b.String()
}

func (e *element) SetTextContent(text string) {
	e.clearChildren()

	if text != "" {
		e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (e *element) clearChildren() {
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
	}
}

func (e *element) InnerHTML() string {
	var b strings.Builder
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(render(c))
	}

	return b.String()
}

func (e *element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return err
	}

	e.clearChildren()

	for _, n := range nodes {
		detach(n)
		e.n.AppendChild(n)
	}

	return nil
}

func (e *element) OuterHTML() string { return render(e.n) }

func (e *element) ChildNodes() []Node {
	var out []Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, e.doc.Wrap(c))
	}

	return out
}

func (e *element) Append(nodes ...Node) {
	for _, node := range nodes {
		n := node.Raw()
		detach(n)
		e.n.AppendChild(n)
	}
}

func (e *element) Prepend(nodes ...Node) {
	first := e.n.FirstChild

	for _, node := range nodes {
		n := node.Raw()
		if n == first {
			first = n.NextSibling
		}

		detach(n)

		if first == nil {
			e.n.AppendChild(n)
		} else {
			e.n.InsertBefore(n, first)
		}
	}
}

func (e *element) InsertBefore(node, ref Node) {
	if ref == nil || ref.Raw().Parent != e.n {
		e.Append(node)

		return
	}

	n := node.Raw()
	if n == ref.Raw() {
		return
	}

	detach(n)
	e.n.InsertBefore(n, ref.Raw())
}

func (e *element) SetExpando(key string, value any) {
	if e.expandos == nil {
		e.expandos = make(map[string]any)
	}

	e.expandos[key] = value
}

func (e *element) Expando(key string) (any, bool) {
	v, ok := e.expandos[key]

	return v, ok
}

func (e *element) SetListener(event string, handler any) {
	if handler == nil {
		delete(e.listeners, event)

		return
	}

	if e.listeners == nil {
		e.listeners = make(map[string]any)
	}

	e.listeners[event] = handler
}

func (e *element) Listener(event string) any {
	return e.listeners[event]
}

func (e *element) Dispatch(event string, arg any) int {
	return invoke(e.listeners[event], arg)
}

func invoke(handler any, arg any) int {
	switch h := handler.(type) {
	case func():
		h()

		return 1
	case func(any):
		h(arg)

		return 1
	case []any:
		n := 0
		for _, item := range h {
			n += invoke(item, arg)
		}

		return n
	}

	return 0
}
