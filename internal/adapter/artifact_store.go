package adapter

import (
	"errors"
	"io/fs"

	m "vapor.dev/pkg/vapor/internal/model"
)

const artifactPerm = 0o644

// ArtifactStore persists generated modules.
type ArtifactStore interface {
	// Load returns the stored module at path; ok is false when none exists.
	Load(path m.Path) (code string, ok bool, err error)
	// Save stores code at path.
	Save(path m.Path, code string) error
}

type artifactStore struct {
	fs SourceFSAdapter
}

// NewArtifactStore creates an ArtifactStore writing through fs.
func NewArtifactStore(fs SourceFSAdapter) ArtifactStore {
	return &artifactStore{fs: fs}
}

func (s *artifactStore) Load(path m.Path) (string, bool, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}

		return "", false, err
	}

	return string(data), true, nil
}

func (s *artifactStore) Save(path m.Path, code string) error {
	return s.fs.WriteFile(path, []byte(code), artifactPerm)
}
