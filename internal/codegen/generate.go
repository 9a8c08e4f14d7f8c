// Package codegen turns an IR program into a stream of code fragments for
// a render function that calls the runtime patch helpers.
package codegen

import (
	"fmt"
	"strings"

	"vapor.dev/pkg/vapor/internal/ir"
	"vapor.dev/pkg/vapor/internal/shared"
)

// Result is the output of one program generation.
type Result struct {
	Fragments Fragments
	// Helpers are the runtime helpers the code imports, sorted.
	Helpers []string
	// Delegates are the delegated event names, sorted.
	Delegates []string
}

// Generate renders prog as a module exporting `render(_ctx)`.
func Generate(prog *ir.Program, opts Options) (*Result, error) {
	if prog == nil || prog.Block == nil {
		return nil, fmt.Errorf("codegen: %w", ir.ErrEmptyProgram)
	}

	ctx := NewContext(opts)

	var render Fragments

	err := ctx.withRoutine([]string{ctxName}, func(*routine) error {
		body, err := genBlockContent(prog.Block, ctx)
		if err != nil {
			return err
		}

		render = text("export function render(" + ctxName + ") {")
		render.Push(IndentStart)
		render.Append(body)
		render.Push(IndentEnd, Newline, Text("}"))

		return nil
	})
	if err != nil {
		return nil, err
	}

	var preamble Fragments

	for i, tpl := range prog.Templates {
		preamble.Push(Newline, Text(fmt.Sprintf("const t%d = %s(%s)", i, ctx.Helper("template"), shared.Quote(tpl))))
	}

	if delegates := ctx.Delegates(); len(delegates) > 0 {
		args := make([]Fragments, 0, len(delegates))
		for _, d := range delegates {
			args = append(args, text(shared.Quote(d)))
		}

		preamble.Push(Newline)
		preamble.Append(genCall(ctx.Helper("delegateEvents"), args...))
	}

	var out Fragments

	helpers := ctx.Helpers()
	if len(helpers) > 0 {
		specs := make([]string, 0, len(helpers))
		for _, h := range helpers {
			specs = append(specs, h+" as _"+h)
		}

		out.Push(Text(fmt.Sprintf("import { %s } from '%s'", strings.Join(specs, ", "), ctx.opts.RuntimeModule)))
	}

	out.Append(preamble)
	out.Push(Newline, Newline)
	out.Append(render)

	return &Result{
		Fragments: out,
		Helpers:   helpers,
		Delegates: ctx.Delegates(),
	}, nil
}
