package codegen

import (
	"vapor.dev/pkg/vapor/internal/ir"
)

// genOperations concatenates the output of every operation in order.
func genOperations(ops []ir.Operation, ctx *Context, tr *tracker) (Fragments, error) {
	var out Fragments

	for _, op := range ops {
		frag, err := genOperation(op, ctx, tr)
		if err != nil {
			return nil, err
		}

		out.Append(frag)
	}

	return out, nil
}

// genOperation dispatches one operation to its generator. Every generator
// output starts with a Newline marker. tr is nil outside effects.
//
//nolint:cyclop
func genOperation(op ir.Operation, ctx *Context, tr *tracker) (Fragments, error) {
	switch o := op.(type) {
	case *ir.SetProp:
		return genSetProp(o, ctx, tr), nil
	case *ir.SetDynamicProps:
		return genDynamicProps(o, ctx, tr), nil
	case *ir.SetText:
		return genSetText(o, ctx, tr), nil
	case *ir.SetEvent:
		return genSetEvent(o, ctx), nil
	case *ir.SetDynamicEvents:
		return genSetDynamicEvents(o, ctx), nil
	case *ir.SetHTML:
		return genSetHTML(o, ctx, tr), nil
	case *ir.SetTemplateRef:
		return genSetTemplateRef(o, ctx), nil
	case *ir.SetModelValue:
		return genSetModelValue(o, ctx), nil
	case *ir.CreateTextNode:
		return genCreateTextNode(o, ctx), nil
	case *ir.InsertNode:
		return genInsertNode(o, ctx), nil
	case *ir.PrependNode:
		return genPrependNode(o, ctx), nil
	case *ir.If:
		return genIf(o, ctx, false)
	case *ir.For:
		return genFor(o, ctx)
	case *ir.CreateComponent:
		return genCreateComponent(o, ctx)
	case *ir.DeclareOldRef:
		return genDeclareOldRef(o), nil
	case *ir.SlotOutlet:
		return genSlotOutlet(o, ctx)
	case *ir.SetInheritAttrs:
		return genSetInheritAttrs(o, ctx), nil
	}

	return nil, &UnsupportedOperationError{Op: op}
}
