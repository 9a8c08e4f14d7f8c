// Package model holds the data passed between the CLI layers.
package model

// Path represents a file system path.
type Path string

// IRExtension is the suffix of IR program documents.
const IRExtension = ".vapor.yaml"

// ArtifactExtension is the suffix of generated modules.
const ArtifactExtension = ".js"

// File represents a file on disk.
type File struct {
	Path Path
	Hash string
}

// Source is one IR document and the place its generated module goes.
type Source struct {
	Origin *File
	// ShortPath is Origin relative to the compile root, used for display.
	ShortPath Path
	Artifact  Path
}
