package config

import "io"

// Source is a configuration input descriptor: a file path, a file record
// with explicit format/optional flags, an inline tree, or a raw reader.
type Source interface {
	sourceMarker()
}

// FilePath is a bare path; its format is inferred from the extension.
type FilePath struct {
	Path string
}

func (FilePath) sourceMarker() {}

// FileRecord is a path with an explicit format override and an optional
// flag that suppresses the missing-file error.
type FileRecord struct {
	Path     string
	Format   string
	Optional bool
}

func (FileRecord) sourceMarker() {}

// Inline supplies a tree directly, bypassing the loader and format
// adapters entirely.
type Inline struct {
	Tree map[string]any
}

func (Inline) sourceMarker() {}

// Reader decodes a non-file source, such as an embedded document, using
// Format to select the adapter.
type Reader struct {
	R      io.Reader
	Format string
}

func (Reader) sourceMarker() {}
