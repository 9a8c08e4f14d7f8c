package codegen

import (
	"fmt"
	"strings"

	"vapor.dev/pkg/vapor/internal/ir"
)

// genBlock renders a block as an arrow function `(params) => { ... }`.
func genBlock(block *ir.Block, ctx *Context, params []string) (Fragments, error) {
	var body Fragments

	err := ctx.withRoutine(params, func(*routine) error {
		var err error
		body, err = genBlockContent(block, ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	out := text("(" + strings.Join(params, ", ") + ") => {")
	out.Push(IndentStart)
	out.Append(body)

	return append(out, IndentEnd, Newline, Text("}")), nil
}

// genBlockContent renders the statements of the current routine: shadow
// declarations, hoisted resolutions, node lookups, operations, effects and
// the return value.
func genBlockContent(block *ir.Block, ctx *Context) (Fragments, error) {
	if block == nil {
		block = &ir.Block{}
	}

	var body Fragments

	for _, node := range block.Nodes {
		body.Append(genDynamicNode(node, ctx))
	}

	ops, err := genOperations(block.Operations, ctx, nil)
	if err != nil {
		return nil, err
	}

	body.Append(ops)

	effects, err := genEffects(block.Effects, ctx)
	if err != nil {
		return nil, err
	}

	body.Append(effects)
	body.Append(genReturn(block.Returns))

	r := ctx.routine

	var head Fragments
	if len(r.shadows) > 0 {
		head.Push(Newline, Text("let "+strings.Join(r.shadows, ", ")))
	}

	for _, decl := range r.hoists {
		head.Push(Newline, Text(decl))
	}

	return append(head, body...), nil
}

func genDynamicNode(node ir.DynamicNode, ctx *Context) Fragments {
	switch {
	case node.Template != nil:
		return frags(Newline, Text(fmt.Sprintf("const %s = t%d()", nodeRef(node.ID), *node.Template)))
	case node.Parent != nil:
		out := frags(Newline, Text("const "+nodeRef(node.ID)+" = "))

		return append(out, genCall(ctx.Helper("child"),
			text(nodeRef(*node.Parent)), text(fmt.Sprint(node.Index)))...)
	}

	return nil
}

func genReturn(returns []int) Fragments {
	switch len(returns) {
	case 0:
		return frags(Newline, Text("return null"))
	case 1:
		return frags(Newline, Text("return "+nodeRef(returns[0])))
	}

	items := make([]Fragments, 0, len(returns))
	for _, id := range returns {
		items = append(items, text(nodeRef(id)))
	}

	out := frags(Newline, Text("return "))

	return append(out, genMulti(delimitersArray, items...)...)
}
