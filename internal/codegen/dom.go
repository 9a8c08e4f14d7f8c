package codegen

import (
	"vapor.dev/pkg/vapor/internal/ir"
)

func genInsertNode(op *ir.InsertNode, ctx *Context) Fragments {
	var elements Fragments

	if len(op.Elements) == 1 {
		elements = text(nodeRef(op.Elements[0]))
	} else {
		items := make([]Fragments, 0, len(op.Elements))
		for _, el := range op.Elements {
			items = append(items, text(nodeRef(el)))
		}

		elements = genMulti(delimitersArray, items...)
	}

	var anchor Fragments
	if op.Anchor != nil {
		anchor = text(nodeRef(*op.Anchor))
	}

	out := frags(Newline)

	return append(out, genCall(ctx.Helper("insert"), elements, text(nodeRef(op.Parent)), anchor)...)
}

func genPrependNode(op *ir.PrependNode, ctx *Context) Fragments {
	args := []Fragments{text(nodeRef(op.Parent))}
	for _, el := range op.Elements {
		args = append(args, text(nodeRef(el)))
	}

	out := frags(Newline)

	return append(out, genCall(ctx.Helper("prepend"), args...)...)
}
