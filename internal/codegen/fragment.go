package codegen

import (
	"vapor.dev/pkg/vapor/internal/ir"
)

// Fragment is one atomic output token: Text, Marker or *Ident.
type Fragment interface {
	fragment()
}

// Text is opaque literal code. It never contains a line break.
type Text string

// Marker is a structural token the printer turns into whitespace.
type Marker int

// Structural markers.
const (
	Newline Marker = iota + 1
	IndentStart
	IndentEnd
)

func (m Marker) String() string {
	switch m {
	case Newline:
		return "NEWLINE"
	case IndentStart:
		return "INDENT_START"
	case IndentEnd:
		return "INDENT_END"
	}

	return "MARKER?"
}

// Ident is code that reads names: an identifier, a member chain or opaque
// raw code. Key is set only for plain reads of reactive state and names
// the dependency; Shadow, once assigned, makes the reference
// render as `(Shadow = Text)`.
type Ident struct {
	Text   string
	Loc    *ir.Loc
	Key    string
	Shadow string
}

func (Text) fragment()   {}
func (Marker) fragment() {}
func (*Ident) fragment() {}

// Render returns the code the identifier stands for.
func (i *Ident) Render() string {
	if i.Shadow != "" {
		return "(" + i.Shadow + " = " + i.Text + ")"
	}

	return i.Text
}

// Fragments is an ordered fragment sequence.
type Fragments []Fragment

// Push appends fragments, skipping nils.
func (f *Fragments) Push(frags ...Fragment) {
	for _, frag := range frags {
		if frag != nil {
			*f = append(*f, frag)
		}
	}
}

// Append appends every given sequence in order.
func (f *Fragments) Append(seqs ...Fragments) {
	for _, seq := range seqs {
		*f = append(*f, seq...)
	}
}

// CountNewlines returns the number of Newline markers.
func (f Fragments) CountNewlines() int {
	n := 0

	for _, frag := range f {
		if frag == Newline {
			n++
		}
	}

	return n
}

// WithoutNewlines returns a copy with Newline markers removed.
func (f Fragments) WithoutNewlines() Fragments {
	out := make(Fragments, 0, len(f))

	for _, frag := range f {
		if frag != Newline {
			out = append(out, frag)
		}
	}

	return out
}

func frags(parts ...Fragment) Fragments {
	out := make(Fragments, 0, len(parts))
	out.Push(parts...)

	return out
}

func text(s string) Fragments {
	return Fragments{Text(s)}
}

// delimiters describe how genMulti joins a list.
type delimiters struct {
	left, right, sep string
	// placeholder replaces nil items; when empty, nil items are dropped
	// instead. Trailing nil items are always dropped.
	placeholder string
}

var (
	delimitersArgs   = delimiters{left: "(", right: ")", sep: ", ", placeholder: "null"}
	delimitersArray  = delimiters{left: "[", right: "]", sep: ", "}
	delimitersObject = delimiters{left: "{ ", right: " }", sep: ", "}
)

func genMulti(d delimiters, items ...Fragments) Fragments {
	if d.placeholder != "" {
		for len(items) > 0 && items[len(items)-1] == nil {
			items = items[:len(items)-1]
		}
	}

	out := Fragments{Text(d.left)}
	first := true

	for _, item := range items {
		if item == nil {
			if d.placeholder == "" {
				continue
			}

			item = text(d.placeholder)
		}

		if !first {
			out = append(out, Text(d.sep))
		}

		first = false

		out = append(out, item...)
	}

	if d == delimitersObject && first {
		return text("{}")
	}

	return append(out, Text(d.right))
}

// genCall emits name(args...). Missing trailing arguments are dropped,
// missing middle arguments become null.
func genCall(name string, args ...Fragments) Fragments {
	return append(Fragments{Text(name)}, genMulti(delimitersArgs, args...)...)
}

// genCallCompact emits name(args...) dropping every missing argument.
func genCallCompact(name string, args ...Fragments) Fragments {
	d := delimitersArgs
	d.placeholder = ""

	return append(Fragments{Text(name)}, genMulti(d, args...)...)
}
