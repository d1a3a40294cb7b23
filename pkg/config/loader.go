package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/devscast/confcore/pkg/format"
)

// SourceLoader reads a Source into a tree, never performing placeholder
// substitution — that is PlaceholderResolver's job, run once after every
// source has been merged.
type SourceLoader struct {
	// Cwd resolves relative FileRecord/FilePath paths.
	Cwd string
}

// Load reads src. A nil, nil result means the source contributed
// nothing (an optional FileRecord whose file is absent).
func (l SourceLoader) Load(src Source) (map[string]any, error) {
	switch s := src.(type) {
	case FilePath:
		return l.Load(FileRecord{Path: s.Path})
	case FileRecord:
		return l.loadFileRecord(s)
	case Inline:
		if s.Tree == nil {
			return map[string]any{}, nil
		}
		return Clone(s.Tree).(map[string]any), nil
	case Reader:
		data, err := io.ReadAll(s.R)
		if err != nil {
			return nil, &ParseError{Path: "<reader>", Err: err}
		}
		return l.decode("<reader>", s.Format, data)
	default:
		return nil, fmt.Errorf("config: unsupported source type %T", src)
	}
}

func (l SourceLoader) loadFileRecord(s FileRecord) (map[string]any, error) {
	path := s.Path
	if !filepath.IsAbs(path) && l.Cwd != "" {
		path = filepath.Join(l.Cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if s.Optional {
				return nil, nil
			}
			return nil, &FileNotFoundError{Path: s.Path}
		}
		return nil, &ParseError{Path: s.Path, Err: err}
	}

	ext := s.Format
	if ext == "" {
		ext = filepath.Ext(path)
	}
	return l.decode(s.Path, ext, data)
}

func (l SourceLoader) decode(path, ext string, data []byte) (map[string]any, error) {
	p, ok := format.Lookup(ext)
	if !ok {
		return nil, &ParseError{Path: path, Err: &format.UnsupportedFormatError{Extension: ext}}
	}

	tree, err := p.Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	obj, ok := tree.(map[string]any)
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("decoded document is not an object at root")}
	}
	return obj, nil
}
