package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "vapor.dev/pkg/vapor/internal/model"
)

const recursiveSuffix = "/..."

// collectSources resolves path patterns into IR sources. "dir/..." walks
// dir recursively, a directory is scanned without descending and a file
// is taken as is. Paths matching any exclude pattern are skipped.
func (w *workflow) collectSources(paths []m.Path, exclude []string, output m.Path) ([]m.Source, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"." + recursiveSuffix}
	}

	seen := map[m.Path]bool{}

	var sources []m.Source

	for _, pattern := range paths {
		root, recursive := splitPattern(pattern)

		info, err := w.FileInfo(root)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		base := root
		if !info.IsDir() {
			base = m.Path(filepath.Dir(string(root)))
		}

		err = w.Walk(root, recursive, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fi.IsDir() || !strings.HasSuffix(path, m.IRExtension) || matchesAny(excludes, path) {
				return nil
			}

			if seen[m.Path(path)] {
				return nil
			}

			seen[m.Path(path)] = true

			source, err := w.newSource(base, m.Path(path), output)
			if err != nil {
				return err
			}

			sources = append(sources, source)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", pattern, err)
		}
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Origin.Path < sources[j].Origin.Path
	})

	return sources, nil
}

func (w *workflow) newSource(base, path, output m.Path) (m.Source, error) {
	hash, err := w.HashFile(path)
	if err != nil {
		return m.Source{}, fmt.Errorf("hash error for %s: %w", path, err)
	}

	artifact := m.Path(strings.TrimSuffix(string(path), m.IRExtension) + m.ArtifactExtension)

	if output != "" {
		rel, err := w.RelPath(base, artifact)
		if err != nil {
			return m.Source{}, err
		}

		artifact = w.JoinPath(string(output), string(rel))
	}

	return m.Source{
		Origin:    &m.File{Path: path, Hash: hash},
		ShortPath: path,
		Artifact:  artifact,
	}, nil
}

func splitPattern(pattern m.Path) (m.Path, bool) {
	p := string(pattern)
	if p == "..." {
		return ".", true
	}

	if strings.HasSuffix(p, recursiveSuffix) {
		root := strings.TrimSuffix(p, recursiveSuffix)
		if root == "" {
			root = "/"
		}

		return m.Path(root), true
	}

	return pattern, false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesAny(excludes []*regexp.Regexp, path string) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
