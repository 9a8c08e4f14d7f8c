package codegen

import (
	"fmt"
	"regexp"
	"strings"

	"vapor.dev/pkg/vapor/internal/ir"
	"vapor.dev/pkg/vapor/internal/shared"
)

var nonWordRe = regexp.MustCompile(`\W`)

// assetID turns a component name into a valid local identifier.
func assetID(name string) string {
	return "_component_" + nonWordRe.ReplaceAllStringFunc(name, func(m string) string {
		if m == "-" {
			return "_"
		}

		return fmt.Sprint([]rune(m)[0])
	})
}

// genCreateComponent emits `const nID = _createComponent(comp, rawProps, rawSlots, root, once)`.
// Assets are resolved once per routine through a hoisted declaration.
func genCreateComponent(op *ir.CreateComponent, ctx *Context) (Fragments, error) {
	var tag Fragments

	if op.Asset {
		id := assetID(op.Tag)
		ctx.routine.hoist(fmt.Sprintf("const %s = %s(%s)", id, ctx.Helper("resolveComponent"), shared.Quote(op.Tag)))
		tag = text(id)
	} else {
		tag = genExpr(ir.ParseShorthand(op.Tag, nil), ctx)
	}

	slots, err := genRawSlots(op.Slots, ctx)
	if err != nil {
		return nil, err
	}

	var root, once Fragments
	if op.Root {
		root = text("true")
	}

	if op.Once {
		once = text("true")
	}

	out := frags(Newline, Text("const "+nodeRef(op.ID)+" = "))

	return append(out, genCall(ctx.Helper("createComponent"),
		tag, genRawProps(op.Props, ctx), slots, root, once)...), nil
}

// genRawProps renders component props as getters. A single static source
// is an object, several sources are an array of objects and getters.
func genRawProps(sources []ir.PropsSource, ctx *Context) Fragments {
	if len(sources) == 0 {
		return nil
	}

	items := make([]Fragments, 0, len(sources))

	for _, src := range sources {
		switch src.Kind {
		case ir.PropsExpression:
			items = append(items, genGetter(genExpression(src.Value, ctx)))
		default:
			props := make([]Fragments, 0, len(src.Props))
			for _, prop := range src.Props {
				item := genPropKey(prop, ctx)
				item.Push(Text(": "))
				props = append(props, append(item, genGetter(genPropValue(prop.Values, ctx))...))
			}

			items = append(items, genMulti(delimitersObject, props...))
		}
	}

	if len(items) == 1 && sources[0].Kind != ir.PropsExpression {
		return items[0]
	}

	return genMulti(delimitersArray, items...)
}

func genGetter(value Fragments) Fragments {
	out := text("() => (")
	out.Append(value)

	return append(out, Text(")"))
}

// genRawSlots renders static slots as `{ name: (props) => {...} }`.
func genRawSlots(slots []ir.Slot, ctx *Context) (Fragments, error) {
	if len(slots) == 0 {
		return nil, nil
	}

	items := make([]Fragments, 0, len(slots))

	for _, slot := range slots {
		name := slot.Name
		if name == "" {
			name = "default"
		}

		fn, err := genSlotFn(slot, ctx)
		if err != nil {
			return nil, err
		}

		item := text(objectKey(name) + ": ")
		items = append(items, append(item, fn...))
	}

	out := Fragments{Text("{"), IndentStart}
	for i, item := range items {
		out.Push(Newline)
		out.Append(item)

		if i < len(items)-1 {
			out.Push(Text(","))
		}
	}

	return append(out, IndentEnd, Newline, Text("}")), nil
}

func genSlotFn(slot ir.Slot, ctx *Context) (Fragments, error) {
	if len(slot.Props) == 0 {
		return genBlock(slot.Block, ctx, nil)
	}

	var body Fragments

	err := ctx.withRoutine(slot.Props, func(*routine) error {
		var err error
		body, err = genBlockContent(slot.Block, ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	out := text("({ " + strings.Join(slot.Props, ", ") + " }) => {")
	out.Push(IndentStart)
	out.Append(body)

	return append(out, IndentEnd, Newline, Text("}")), nil
}
