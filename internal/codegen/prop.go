package codegen

import (
	"fmt"

	"vapor.dev/pkg/vapor/internal/classify"
	"vapor.dev/pkg/vapor/internal/ir"
	"vapor.dev/pkg/vapor/internal/shared"
)

func nodeRef(id int) string {
	return fmt.Sprintf("n%d", id)
}

// genSetProp writes one static-key prop through the helper picked by the
// classification table.
func genSetProp(op *ir.SetProp, ctx *Context, tr *tracker) Fragments {
	key := op.Prop.Key.Content()
	res := ctx.table.Classify(op.Tag, key, string(op.Prop.Modifier))

	value := genPropValue(op.Prop.Values, ctx)
	tr.track(value)

	var keyArg Fragments
	if !res.OmitKey {
		keyArg = genExpression(op.Prop.Key, ctx)
	}

	var rootArg Fragments
	if op.Root && (res.Helper == classify.SetClass || res.Helper == classify.SetStyle) {
		rootArg = text("true")
	}

	out := frags(Newline)

	return append(out, genCallCompact(ctx.Helper(string(res.Helper)),
		text(nodeRef(op.Element)), keyArg, value, rootArg)...)
}

// genDynamicProps writes dynamic-key props and v-bind objects.
func genDynamicProps(op *ir.SetDynamicProps, ctx *Context, tr *tracker) Fragments {
	values := make([]Fragments, 0, len(op.Props))

	for _, src := range op.Props {
		var value Fragments

		switch src.Kind {
		case ir.PropsExpression:
			value = genExpression(src.Value, ctx)
		default:
			value = genLiteralObjectProps(src.Props, ctx)
		}

		tr.track(value)
		values = append(values, value)
	}

	var rootArg Fragments
	if op.Root {
		rootArg = text("true")
	}

	out := frags(Newline)

	return append(out, genCall(ctx.Helper("setDynamicProps"),
		text(nodeRef(op.Element)), genMulti(delimitersArray, values...), rootArg)...)
}

func genLiteralObjectProps(props []ir.Prop, ctx *Context) Fragments {
	items := make([]Fragments, 0, len(props))

	for _, prop := range props {
		item := genPropKey(prop, ctx)
		item.Push(Text(": "))
		items = append(items, append(item, genPropValue(prop.Values, ctx)...))
	}

	return genMulti(delimitersObject, items...)
}

// genPropKey renders an object key: bare when it is a valid identifier,
// quoted otherwise and computed for dynamic keys.
func genPropKey(prop ir.Prop, ctx *Context) Fragments {
	if prop.Key.IsStatic() {
		name := prop.Key.Content()
		if prop.Handler {
			name = shared.ToHandlerKey(name)
		}

		name = string(prop.Modifier) + name

		return Fragments{Text(objectKey(name))}
	}

	key := genExpression(prop.Key, ctx)
	if prop.RuntimeCamelize {
		key = genCall(ctx.Helper("camelize"), key)
	}

	if prop.Handler {
		key = genCall(ctx.Helper("toHandlerKey"), key)
	}

	out := text("[")
	if prop.Modifier != ir.ModifierNone {
		out.Push(Text(shared.Quote(string(prop.Modifier)) + " + "))
	}

	out.Append(key)

	return append(out, Text("]"))
}

// genPropValue renders a single value as is and several as an array.
func genPropValue(values []*ir.Expression, ctx *Context) Fragments {
	switch len(values) {
	case 0:
		return text("undefined")
	case 1:
		return genExpression(values[0], ctx)
	}

	items := make([]Fragments, 0, len(values))
	for _, v := range values {
		items = append(items, genExpression(v, ctx))
	}

	return genMulti(delimitersArray, items...)
}

// genSetInheritAttrs encodes which attrs fall through to the root:
// true for all dynamic, a list of dynamic keys, false for static only and
// nothing when there are none.
func genSetInheritAttrs(op *ir.SetInheritAttrs, ctx *Context) Fragments {
	var value Fragments

	switch {
	case op.AllDynamic:
		value = text("true")
	case len(op.DynamicProps) > 0:
		items := make([]Fragments, 0, len(op.DynamicProps))
		for _, p := range op.DynamicProps {
			items = append(items, text(shared.Quote(p)))
		}

		value = genMulti(delimitersArray, items...)
	case op.StaticProps:
		value = text("false")
	default:
		return nil
	}

	out := frags(Newline)

	return append(out, genCall(ctx.Helper("setInheritAttrs"), value)...)
}
