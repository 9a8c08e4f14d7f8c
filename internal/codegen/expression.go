package codegen

import (
	"strings"

	"vapor.dev/pkg/vapor/internal/ir"
	"vapor.dev/pkg/vapor/internal/shared"
)

// ctxName is the render function parameter reactive state is read from.
const ctxName = "_ctx"

// genExpression renders an expression. Reads of reactive state come out as
// *Ident fragments carrying their dependency key so a tracker can rewrite
// them.
func genExpression(e *ir.Expression, ctx *Context) Fragments {
	if e == nil || e.Node == nil {
		return text("undefined")
	}

	return genExpr(e.Node, ctx)
}

//nolint:cyclop
func genExpr(e ir.Expr, ctx *Context) Fragments {
	switch n := e.(type) {
	case *ir.Ident, *ir.Member:
		return genReference(n, ctx)
	case *ir.Literal:
		return text(n.Raw)
	case *ir.String:
		return text(shared.Quote(n.Value))
	case *ir.Raw:
		// opaque code may read anything, so it is never a constant
		return Fragments{&Ident{Text: strings.TrimSpace(n.Code), Loc: n.Loc}}
	case *ir.Unary:
		return append(text(n.Op), genOperand(n.X, ctx)...)
	case *ir.Binary:
		out := genOperand(n.Left, ctx)
		out.Push(Text(" " + n.Op + " "))

		return append(out, genOperand(n.Right, ctx)...)
	case *ir.Conditional:
		out := genOperand(n.Test, ctx)
		out.Push(Text(" ? "))
		out.Append(genOperand(n.Consequent, ctx))
		out.Push(Text(" : "))

		return append(out, genOperand(n.Alternate, ctx)...)
	case *ir.Call:
		args := make([]Fragments, 0, len(n.Args))
		for _, a := range n.Args {
			args = append(args, genExpr(a, ctx))
		}

		out := genOperand(n.Callee, ctx)
		d := delimitersArgs
		d.placeholder = ""

		return append(out, genMulti(d, args...)...)
	case *ir.Array:
		items := make([]Fragments, 0, len(n.Elements))
		for _, el := range n.Elements {
			items = append(items, genExpr(el, ctx))
		}

		return genMulti(delimitersArray, items...)
	case *ir.Object:
		items := make([]Fragments, 0, len(n.Properties))
		for _, p := range n.Properties {
			item := text(objectKey(p.Key) + ": ")
			items = append(items, append(item, genExpr(p.Value, ctx)...))
		}

		return genMulti(delimitersObject, items...)
	case nil:
		return text("undefined")
	}

	return text("undefined")
}

// genOperand parenthesizes compound operands.
func genOperand(e ir.Expr, ctx *Context) Fragments {
	switch e.(type) {
	case *ir.Binary, *ir.Conditional, *ir.Raw:
		out := text("(")
		out.Append(genExpr(e, ctx))

		return append(out, Text(")"))
	}

	return genExpr(e, ctx)
}

// genReference renders an identifier or a static member chain. Chains
// rooted at a routine local are plain references; anything else reads
// reactive state through _ctx and is keyed by its path.
func genReference(e ir.Expr, ctx *Context) Fragments {
	path, _ := ir.MemberPath(e)
	root, _ := ir.RootIdent(e)

	if root != nil && ctx.isLocal(root.Name) {
		return Fragments{&Ident{Text: path, Loc: e.Pos()}}
	}

	return Fragments{&Ident{Text: ctxName + "." + path, Loc: e.Pos(), Key: path}}
}

func objectKey(key string) string {
	if ir.IsSimpleIdentifier(key) {
		return key
	}

	return shared.Quote(key)
}
