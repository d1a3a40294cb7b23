package format

import "gopkg.in/ini.v1"

type iniParser struct{}

func (iniParser) Extensions() []string { return []string{".ini"} }

// Parse decodes INI text into a tree. Section bodies become nested
// mappings keyed by section name; keys in the unnamed default section are
// merged directly at the tree root. INI has no native typing, so every
// value is a string; callers wanting a typed value use a "%env(type:NAME)%"
// placeholder or coerce the string themselves.
func (iniParser) Parse(data []byte) (any, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	root := make(map[string]any)
	for _, sec := range cfg.Sections() {
		kv := make(map[string]any)
		for _, key := range sec.Keys() {
			kv[key.Name()] = key.Value()
		}
		if sec.Name() == ini.DefaultSection {
			for k, v := range kv {
				root[k] = v
			}
			continue
		}
		root[sec.Name()] = kv
	}
	return root, nil
}
