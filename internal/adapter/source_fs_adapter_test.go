package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "vapor.dev/pkg/vapor/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "app.vapor.yaml"), "block: {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.vapor.yaml"), "block: {}\n")

		visited := walkAll(t, adapter, root, false)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.vapor.yaml")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "app.vapor.yaml")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.vapor.yaml")
		writeTestFile(t, child, "block: {}\n")

		if visited := walkAll(t, adapter, root, true); !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})

	t.Run("recursive skips node_modules", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		modules := filepath.Join(root, "node_modules")
		mustMkdir(t, modules)
		writeTestFile(t, filepath.Join(modules, "dep.vapor.yaml"), "block: {}\n")

		if visited := walkAll(t, adapter, root, true); containsPath(visited, filepath.Join(modules, "dep.vapor.yaml")) {
			t.Fatalf("Walk() descended into node_modules")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "app.vapor.yaml")
	content := "component: App\nblock: {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "app.vapor.yaml")
	content := []byte("component: App\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if hash != expected {
		t.Fatalf("HashFile() = %s, want %s", hash, expected)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "app.vapor.yaml")
	writeTestFile(t, path, "block: {}\n")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_WriteFileCreatesParents(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	target := filepath.Join(t.TempDir(), "out", "deep", "app.js")
	if err := adapter.WriteFile(m.Path(target), []byte("export {}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("WriteFile() did not create file: %v", err)
	}

	if string(got) != "export {}\n" {
		t.Fatalf("WriteFile() wrote %q", string(got))
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/sub/dir/app.vapor.yaml")

	rel, err := adapter.RelPath(base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("sub", "dir", "app.vapor.yaml") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("sub", "dir", "app.vapor.yaml"))
	}

	joined := adapter.JoinPath("/tmp", "project", "sub", "app.js")
	if string(joined) != filepath.Join("/tmp", "project", "sub", "app.js") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "sub", "app.js"))
	}
}

func walkAll(t *testing.T, adapter *LocalSourceFSAdapter, root string, recursive bool) []string {
	t.Helper()

	var visited []string

	err := adapter.Walk(m.Path(root), recursive, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		visited = append(visited, path)

		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	return visited
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
