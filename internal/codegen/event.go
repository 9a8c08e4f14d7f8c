package codegen

import (
	"strings"

	"vapor.dev/pkg/vapor/internal/ir"
	"vapor.dev/pkg/vapor/internal/shared"
)

const eventArg = "$event"

func genSetEvent(op *ir.SetEvent, ctx *Context) Fragments {
	name := genExpression(op.Key, ctx)

	if op.KeyOverride != nil {
		wrapped := text("(")
		wrapped.Append(name)
		wrapped.Push(Text(")"))

		overridden := text("(")
		overridden.Append(wrapped)
		overridden.Push(Text(" === " + shared.Quote(op.KeyOverride.From) + " ? " + shared.Quote(op.KeyOverride.To) + " : "))
		overridden.Append(wrapped)
		overridden.Push(Text(")"))
		name = overridden
	}

	helper := "on"
	if op.Delegate {
		helper = "delegate"

		if op.Key.IsStatic() {
			ctx.delegates[op.Key.Content()] = true
		}
	}

	handler := genEventHandler(ctx, op.Value, op.Modifiers)

	var options Fragments
	if op.Effect || len(op.Modifiers.Options) > 0 {
		items := make([]Fragments, 0, len(op.Modifiers.Options)+1)
		if op.Effect {
			items = append(items, text("effect: true"))
		}

		for _, o := range op.Modifiers.Options {
			items = append(items, text(objectKey(o)+": true"))
		}

		options = genMulti(delimitersObject, items...)
	}

	out := frags(Newline)

	return append(out, genCall(ctx.Helper(helper), text(nodeRef(op.Element)), name, handler, options)...)
}

// genEventHandler renders `() => handler`. References and function
// expressions are used as is, anything else is an inline statement run
// with $event in scope.
func genEventHandler(ctx *Context, value *ir.Expression, mods ir.EventModifiers) Fragments {
	handler := text("() => {}")

	if !value.IsEmpty() {
		switch n := value.Node.(type) {
		case *ir.Ident, *ir.Member:
			handler = genExpression(value, ctx)
		default:
			code := ""
			if raw, ok := n.(*ir.Raw); ok {
				code = strings.TrimSpace(raw.Code)
			}

			if isFunctionExpression(code) {
				handler = text(code)

				break
			}

			var body Fragments

			ctx.withLocals([]string{eventArg}, func() {
				body = genExpression(value, ctx)
			})

			if strings.Contains(code, ";") {
				handler = text(eventArg + " => {")
				handler.Append(body)
				handler.Push(Text("}"))
			} else {
				handler = text(eventArg + " => (")
				handler.Append(body)
				handler.Push(Text(")"))
			}
		}
	}

	if len(mods.NonKeys) > 0 {
		handler = genCall(ctx.Helper("withModifiers"), handler, text(quoteList(mods.NonKeys)))
	}

	if len(mods.Keys) > 0 {
		handler = genCall(ctx.Helper("withKeys"), handler, text(quoteList(mods.Keys)))
	}

	return append(text("() => "), handler...)
}

func isFunctionExpression(code string) bool {
	return strings.HasPrefix(code, "function") || strings.HasPrefix(code, "async ") ||
		strings.Contains(code, "=>")
}

func quoteList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, shared.Quote(item))
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}

func genSetDynamicEvents(op *ir.SetDynamicEvents, ctx *Context) Fragments {
	out := frags(Newline)

	return append(out, genCall(ctx.Helper("setDynamicEvents"),
		text(nodeRef(op.Element)), genExpression(op.Event, ctx))...)
}
