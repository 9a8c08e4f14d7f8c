package codegen

import (
	"vapor.dev/pkg/vapor/internal/ir"
)

// trackableKinds are the operations whose values go through the tracker.
// Any other operation inside an effect disables guarding.
var trackableKinds = map[ir.OperationKind]bool{
	ir.KindSetProp:         true,
	ir.KindSetDynamicProps: true,
	ir.KindSetText:         true,
	ir.KindSetHTML:         true,
}

// genEffects emits one renderEffect registration per effect of the
// current routine, in order.
func genEffects(effects []*ir.Effect, ctx *Context) (Fragments, error) {
	var out Fragments

	for _, effect := range effects {
		frag, err := genEffect(effect, ctx)
		if err != nil {
			return nil, err
		}

		out.Append(frag)
	}

	return out, nil
}

// genEffect wraps the operations of one effect into a single guarded
// renderEffect closure.
//
// Multi-statement bodies become
//
//	_renderEffect(() => {
//	  if (_a !== _ctx.a || _b !== _ctx.b) {
//	    ...
//	  }
//	})
//
// and single statements become `_renderEffect(() => (guards) && op)`.
func genEffect(effect *ir.Effect, ctx *Context) (Fragments, error) {
	if effect == nil || len(effect.Operations) == 0 {
		return nil, nil
	}

	tr := newTracker()

	var ops Fragments

	for _, op := range effect.Operations {
		if op != nil && !trackableKinds[op.Kind()] {
			tr.invalidate()
		}

		frag, err := genOperation(op, ctx, tr)
		if err != nil {
			return nil, err
		}

		ops.Append(frag)
	}

	tr.commit(ctx.routine)

	if len(ops) == 0 {
		return nil, nil
	}

	guard := tr.genGuard()
	out := frags(Newline, Text(ctx.Helper("renderEffect")+"(() => "))

	if ops.CountNewlines() > 1 {
		out.Push(Text("{"), IndentStart)

		if len(guard) > 0 {
			out.Push(Newline, Text("if ("))
			out.Append(guard)
			out.Push(Text(") {"), IndentStart)
			out.Append(ops)
			out.Push(IndentEnd, Newline, Text("}"))
		} else {
			out.Append(ops)
		}

		out.Push(IndentEnd, Newline, Text("})"))

		return out, nil
	}

	if len(guard) > 0 {
		if len(tr.guards) > 1 {
			out.Push(Text("("))
			out.Append(guard)
			out.Push(Text(")"))
		} else {
			out.Append(guard)
		}

		out.Push(Text(" && "))
	}

	out.Append(ops.WithoutNewlines())
	out.Push(Text(")"))

	return out, nil
}
