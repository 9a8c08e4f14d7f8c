package codegen

import (
	"fmt"

	"vapor.dev/pkg/vapor/internal/ir"
)

func refVar(id int) string {
	return fmt.Sprintf("r%d", id)
}

func genDeclareOldRef(op *ir.DeclareOldRef) Fragments {
	return frags(Newline, Text("let "+refVar(op.ID)))
}

// genSetTemplateRef assigns a ref. Effect-driven refs keep the previous
// ref in r<element> so the runtime can unset it.
func genSetTemplateRef(op *ir.SetTemplateRef, ctx *Context) Fragments {
	out := frags(Newline)
	if op.Effect {
		out.Push(Text(refVar(op.Element) + " = "))
	}

	var old, refFor Fragments

	switch {
	case op.Effect:
		old = text(refVar(op.Element))
	case op.RefFor:
		old = text("void 0")
	}

	if op.RefFor {
		refFor = text("true")
	}

	return append(out, genCall(ctx.Helper("setTemplateRef"),
		text(nodeRef(op.Element)), genExpression(op.Value, ctx), old, refFor)...)
}
