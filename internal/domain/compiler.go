package domain

import (
	"fmt"
	"log/slog"

	"vapor.dev/pkg/vapor/internal/adapter"
	"vapor.dev/pkg/vapor/internal/classify"
	"vapor.dev/pkg/vapor/internal/codegen"
	m "vapor.dev/pkg/vapor/internal/model"
	"vapor.dev/pkg/vapor/internal/printer"
)

// CompileOptions tune code generation.
type CompileOptions struct {
	RuntimeModule string
}

// Compiler turns one IR source into a generated module.
type Compiler interface {
	Generate(source m.Source, opts CompileOptions) (m.Artifact, error)
}

type compiler struct {
	ir    adapter.IRFileAdapter
	table *classify.Table
}

// NewCompiler creates a Compiler loading programs through irAdapter and
// classifying props with table.
func NewCompiler(irAdapter adapter.IRFileAdapter, table *classify.Table) Compiler {
	return &compiler{ir: irAdapter, table: table}
}

func (c *compiler) Generate(source m.Source, opts CompileOptions) (m.Artifact, error) {
	artifact := m.Artifact{Source: source}

	if source.Origin == nil {
		return artifact, fmt.Errorf("source has no origin file")
	}

	prog, err := c.ir.Load(source.Origin.Path)
	if err != nil {
		return artifact, err
	}

	res, err := codegen.Generate(prog, codegen.Options{
		RuntimeModule: opts.RuntimeModule,
		Table:         c.table,
	})
	if err != nil {
		return artifact, fmt.Errorf("generate %s: %w", source.Origin.Path, err)
	}

	artifact.Code = printer.Print(res.Fragments)
	artifact.Helpers = res.Helpers
	artifact.Delegates = res.Delegates

	slog.Debug("generated module",
		"source", source.Origin.Path,
		"helpers", len(res.Helpers),
		"delegates", len(res.Delegates),
	)

	return artifact, nil
}
