package codegen

import (
	"vapor.dev/pkg/vapor/internal/ir"
)

// genSlotOutlet emits `const nID = _createSlot(name, rawProps, fallback)`.
// Dynamic slot names are passed as getters.
func genSlotOutlet(op *ir.SlotOutlet, ctx *Context) (Fragments, error) {
	var name Fragments

	switch {
	case op.Name == nil:
		name = text(`"default"`)
	case op.Name.IsStatic():
		name = genExpression(op.Name, ctx)
	default:
		name = genGetter(genExpression(op.Name, ctx))
	}

	var fallback Fragments

	if op.Fallback != nil {
		var err error
		if fallback, err = genBlock(op.Fallback, ctx, nil); err != nil {
			return nil, err
		}
	}

	out := frags(Newline, Text("const "+nodeRef(op.ID)+" = "))

	return append(out, genCall(ctx.Helper("createSlot"), name, genRawProps(op.Props, ctx), fallback)...), nil
}
