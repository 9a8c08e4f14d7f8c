package model

// ArtifactStatus is the outcome of compiling one source.
type ArtifactStatus int

// Available ArtifactStatus values.
const (
	Written ArtifactStatus = iota
	Unchanged
	Stale
	Failed
)

func (s ArtifactStatus) String() string {
	switch s {
	case Written:
		return "written"
	case Unchanged:
		return "unchanged"
	case Stale:
		return "stale"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Artifact is a generated module and what happened to it.
type Artifact struct {
	Source    Source
	Code      string
	Helpers   []string
	Delegates []string
	Status    ArtifactStatus
	// Diff is the unified diff against the stored module for Stale
	// artifacts.
	Diff string
	Err  error
}

// Classification is one row of the classification table.
type Classification struct {
	Tag      string
	Key      string
	Modifier string
	Helper   string
	OmitKey  bool
}
