package codegen

import (
	"vapor.dev/pkg/vapor/internal/ir"
)

func genSetText(op *ir.SetText, ctx *Context, tr *tracker) Fragments {
	args := []Fragments{text(nodeRef(op.Element))}

	for _, v := range op.Values {
		value := genExpression(v, ctx)
		tr.track(value)
		args = append(args, value)
	}

	out := frags(Newline)

	return append(out, genCall(ctx.Helper("setText"), args...)...)
}

func genCreateTextNode(op *ir.CreateTextNode, ctx *Context) Fragments {
	values := make([]Fragments, 0, len(op.Values))
	for _, v := range op.Values {
		values = append(values, genExpression(v, ctx))
	}

	var arg Fragments
	if op.Effect {
		arg = text("() => ")
	}

	arg.Append(genMulti(delimitersArray, values...))

	out := frags(Newline, Text("const "+nodeRef(op.ID)+" = "))

	return append(out, genCall(ctx.Helper("createTextNode"), arg)...)
}

func genSetHTML(op *ir.SetHTML, ctx *Context, tr *tracker) Fragments {
	value := genExpression(op.Value, ctx)
	tr.track(value)

	out := frags(Newline)

	return append(out, genCall(ctx.Helper("setHtml"), text(nodeRef(op.Element)), value)...)
}
