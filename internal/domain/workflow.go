// Package domain holds the compile workflow of the vapor CLI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"vapor.dev/pkg/vapor/internal/adapter"
	"vapor.dev/pkg/vapor/internal/classify"
	"vapor.dev/pkg/vapor/internal/controller"
	m "vapor.dev/pkg/vapor/internal/model"
)

var (
	// ErrCompileFailed is returned when at least one source failed to compile.
	ErrCompileFailed = errors.New("compile failed")
	// ErrStaleArtifacts is returned in check mode when a stored module
	// differs from the generated one.
	ErrStaleArtifacts = errors.New("generated modules are out of date")
	// ErrNoTag is returned by Classify without a tag.
	ErrNoTag = errors.New("tag is required")
)

// CompileArgs contains the arguments of a compile run.
type CompileArgs struct {
	Paths   []m.Path
	Exclude []string
	// Output is the directory modules are written to, mirroring the source
	// tree. Empty writes each module next to its source.
	Output        m.Path
	Threads       uint
	Check         bool
	RuntimeModule string
}

// ClassifyArgs names the bindings to classify. A key may carry a "." or
// "^" modifier prefix.
type ClassifyArgs struct {
	Tag  string
	Keys []string
}

// ViewArgs selects the source to generate and show.
type ViewArgs struct {
	Path          m.Path
	RuntimeModule string
}

// Workflow defines the operations of the vapor CLI.
type Workflow interface {
	Compile(ctx context.Context, args CompileArgs) error
	Classify(ctx context.Context, args ClassifyArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ArtifactStore
	controller.UI
	Compiler
	table *classify.Table
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.ArtifactStore,
	ui controller.UI,
	compiler Compiler,
	table *classify.Table,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ArtifactStore:   store,
		UI:              ui,
		Compiler:        compiler,
		table:           table,
	}
}

func (w *workflow) Compile(ctx context.Context, args CompileArgs) error {
	sources, err := w.collectSources(args.Paths, args.Exclude, args.Output)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	slog.Info("compiling sources", "count", len(sources), "threads", args.Threads, "check", args.Check)

	artifacts := make([]m.Artifact, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(int(args.Threads))
	}

	for i, source := range sources {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			artifacts[i] = w.compileSource(source, args)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := w.DisplayCompileResults(ctx, artifacts); err != nil {
		return fmt.Errorf("display results: %w", err)
	}

	var failed, stale int

	for _, a := range artifacts {
		switch a.Status {
		case m.Failed:
			failed++
		case m.Stale:
			stale++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources: %w", failed, len(artifacts), ErrCompileFailed)
	}

	if stale > 0 {
		return fmt.Errorf("%d of %d sources: %w", stale, len(artifacts), ErrStaleArtifacts)
	}

	return nil
}

// compileSource generates one module and either compares it with the
// stored one or writes it. Errors are recorded on the artifact.
func (w *workflow) compileSource(source m.Source, args CompileArgs) m.Artifact {
	artifact, err := w.Generate(source, CompileOptions{RuntimeModule: args.RuntimeModule})
	if err != nil {
		return failedArtifact(artifact, err)
	}

	stored, ok, err := w.Load(source.Artifact)
	if err != nil {
		return failedArtifact(artifact, fmt.Errorf("load %s: %w", source.Artifact, err))
	}

	if ok && stored == artifact.Code {
		artifact.Status = m.Unchanged
		return artifact
	}

	if args.Check {
		artifact.Status = m.Stale
		artifact.Diff = unifiedDiff(string(source.Artifact), stored, artifact.Code)

		slog.Warn("stale module", "artifact", source.Artifact)

		return artifact
	}

	if err := w.Save(source.Artifact, artifact.Code); err != nil {
		return failedArtifact(artifact, fmt.Errorf("save %s: %w", source.Artifact, err))
	}

	artifact.Status = m.Written

	return artifact
}

func failedArtifact(artifact m.Artifact, err error) m.Artifact {
	slog.Error("compile source", "source", artifact.Source.ShortPath, "error", err)

	artifact.Status = m.Failed
	artifact.Err = err

	return artifact
}

func unifiedDiff(name, stored, generated string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(stored),
		B:        difflib.SplitLines(generated),
		FromFile: name,
		ToFile:   name + " (generated)",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}

func (w *workflow) Classify(ctx context.Context, args ClassifyArgs) error {
	if strings.TrimSpace(args.Tag) == "" {
		return ErrNoTag
	}

	rows := make([]m.Classification, 0, len(args.Keys))

	for _, raw := range args.Keys {
		key, modifier := splitModifier(raw)
		res := w.table.Classify(args.Tag, key, modifier)

		rows = append(rows, m.Classification{
			Tag:      args.Tag,
			Key:      key,
			Modifier: modifier,
			Helper:   string(res.Helper),
			OmitKey:  res.OmitKey,
		})
	}

	return w.DisplayClassifications(ctx, rows)
}

func splitModifier(key string) (string, string) {
	for _, modifier := range []string{classify.PropModifier, classify.AttrModifier} {
		if rest, ok := strings.CutPrefix(key, modifier); ok && rest != "" {
			return rest, modifier
		}
	}

	return key, ""
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	hash, err := w.HashFile(args.Path)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	source := m.Source{
		Origin:    &m.File{Path: args.Path, Hash: hash},
		ShortPath: args.Path,
	}

	artifact, err := w.Generate(source, CompileOptions{RuntimeModule: args.RuntimeModule})
	if err != nil {
		return err
	}

	return w.DisplayCode(ctx, string(args.Path), artifact.Code)
}
