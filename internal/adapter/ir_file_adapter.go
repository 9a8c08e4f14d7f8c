package adapter

import (
	"fmt"

	"vapor.dev/pkg/vapor/internal/ir"
	m "vapor.dev/pkg/vapor/internal/model"
)

// IRFileAdapter loads IR program documents so the domain does not depend
// on the document format.
type IRFileAdapter interface {
	// Load reads and decodes the program at path.
	Load(path m.Path) (*ir.Program, error)
}

// LocalIRFileAdapter decodes YAML IR documents read through a
// SourceFSAdapter.
type LocalIRFileAdapter struct {
	fs SourceFSAdapter
}

// NewLocalIRFileAdapter constructs a LocalIRFileAdapter.
func NewLocalIRFileAdapter(fs SourceFSAdapter) *LocalIRFileAdapter {
	return &LocalIRFileAdapter{fs: fs}
}

// Load reads path and decodes it as an IR program.
func (a *LocalIRFileAdapter) Load(path m.Path) (*ir.Program, error) {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return ir.Decode(data, string(path))
}
