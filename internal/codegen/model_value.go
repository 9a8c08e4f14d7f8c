package codegen

import (
	"vapor.dev/pkg/vapor/internal/ir"
	"vapor.dev/pkg/vapor/internal/shared"
)

// genSetModelValue delegates "update:<key>" to an assignment of $event.
func genSetModelValue(op *ir.SetModelValue, ctx *Context) Fragments {
	var name Fragments

	if op.Key.IsStatic() {
		name = text(shared.Quote("update:" + shared.Camelize(op.Key.Content())))
	} else {
		name = text("`update:${")
		name.Append(genExpression(op.Key, ctx))
		name.Push(Text("}`"))
	}

	handler := text("() => " + eventArg + " => (")
	handler.Append(genExpression(op.Value, ctx))
	handler.Push(Text(" = " + eventArg + ")"))

	out := frags(Newline)

	return append(out, genCall(ctx.Helper("delegate"), text(nodeRef(op.Element)), name, handler)...)
}
