// Package controller provides the output adapters of the vapor CLI.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "vapor.dev/pkg/vapor/internal/model"
)

// UI displays workflow results. Implementations can use plain text or an
// interactive terminal program.
type UI interface {
	DisplayCompileResults(ctx context.Context, artifacts []m.Artifact) error
	DisplayClassifications(ctx context.Context, rows []m.Classification) error
	DisplayCode(ctx context.Context, title, code string) error
}

// NewUI returns the TUI when output is a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
