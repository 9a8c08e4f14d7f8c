package codegen

import (
	"vapor.dev/pkg/vapor/internal/ir"
)

// genIf emits `const nID = _createIf(() => (cond), positive, negative)`.
// A nested else-if is emitted inline as the negative branch.
func genIf(op *ir.If, ctx *Context, nested bool) (Fragments, error) {
	cond := text("() => (")
	cond.Append(genExpression(op.Condition, ctx))
	cond.Push(Text(")"))

	positive, err := genBlock(op.Positive, ctx, nil)
	if err != nil {
		return nil, err
	}

	var negative Fragments

	switch {
	case op.NegativeIf != nil:
		inner, err := genIf(op.NegativeIf, ctx, true)
		if err != nil {
			return nil, err
		}

		negative = append(text("() => "), inner...)
	case op.Negative != nil:
		if negative, err = genBlock(op.Negative, ctx, nil); err != nil {
			return nil, err
		}
	}

	var once Fragments
	if op.Once {
		once = text("true")
	}

	var out Fragments
	if !nested {
		out.Push(Newline, Text("const "+nodeRef(op.ID)+" = "))
	}

	return append(out, genCall(ctx.Helper("createIf"), cond, positive, negative, once)...), nil
}
