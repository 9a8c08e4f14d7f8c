package codegen

import (
	"strings"

	"vapor.dev/pkg/vapor/internal/ir"
)

// genFor emits `const nID = _createFor(() => (src), (item, key, index) => {...}, getKey, once)`.
func genFor(op *ir.For, ctx *Context) (Fragments, error) {
	source := text("() => (")
	source.Append(genExpression(op.Source, ctx))
	source.Push(Text(")"))

	params := forParams(op.Value, op.Key, op.Index)

	render, err := genBlock(op.Render, ctx, params)
	if err != nil {
		return nil, err
	}

	var getKey Fragments
	if op.KeyProp != nil {
		ctx.withLocals(params, func() {
			getKey = text("(" + strings.Join(params, ", ") + ") => (")
			getKey.Append(genExpression(op.KeyProp, ctx))
			getKey.Push(Text(")"))
		})
	}

	var once Fragments
	if op.Once {
		once = text("true")
	}

	out := frags(Newline, Text("const "+nodeRef(op.ID)+" = "))

	return append(out, genCall(ctx.Helper("createFor"), source, render, getKey, once)...), nil
}

// forParams drops trailing unnamed parameters and names the middle ones
// _, __, ___.
func forParams(names ...string) []string {
	for len(names) > 0 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}

	out := make([]string, len(names))

	for i, name := range names {
		if name == "" {
			name = strings.Repeat("_", i+1)
		}

		out[i] = name
	}

	return out
}
