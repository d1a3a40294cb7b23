package config

import "dario.cat/mergo"

// Merger deep-merges two trees: arrays replace wholesale, plain objects
// recurse key-wise, everything else clones next (or base, when next is
// absent).
type Merger struct{}

// Merge returns a freshly allocated tree; neither base nor next is
// mutated or aliased by the result.
func (Merger) Merge(base, next any) (any, error) {
	if next == nil {
		return Clone(base), nil
	}

	if _, baseIsArr := base.([]any); baseIsArr {
		if nextArr, nextIsArr := next.([]any); nextIsArr {
			return Clone(nextArr), nil
		}
	}

	baseObj, baseIsObj := base.(map[string]any)
	nextObj, nextIsObj := next.(map[string]any)
	if baseIsObj && nextIsObj {
		return mergeObjects(baseObj, nextObj)
	}

	return Clone(next), nil
}

// mergeObjects merges next into a clone of base. mergo.WithOverride
// performs the bulk scalar/new-key merge and leaves keys found only in
// base in place; the loop afterward re-applies
// the wholesale array-replace and recursive-object rules explicitly,
// since mergo's own slice handling is tuned for append-style merges
// elsewhere in this package's dependency graph, not this tree's
// replace-on-conflict semantics.
func mergeObjects(base, next map[string]any) (map[string]any, error) {
	out := Clone(base).(map[string]any)
	if err := mergo.Merge(&out, next, mergo.WithOverride); err != nil {
		return nil, err
	}

	for k, nv := range next {
		switch nTyped := nv.(type) {
		case []any:
			out[k] = Clone(nTyped)
		case map[string]any:
			if bTyped, ok := base[k].(map[string]any); ok {
				merged, err := mergeObjects(bTyped, nTyped)
				if err != nil {
					return nil, err
				}
				out[k] = merged
			} else {
				out[k] = Clone(nTyped)
			}
		}
	}
	return out, nil
}
