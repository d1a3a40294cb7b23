package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlParser struct{}

func (yamlParser) Extensions() []string { return []string{".yaml", ".yml"} }

func (yamlParser) Parse(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// normalizeYAML rewrites integer leaves as float64 and mapping keys as
// strings, matching the json parser's output shape.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	case map[string]any:
		for k, vv := range val {
			val[k] = normalizeYAML(vv)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[fmt.Sprint(k)] = normalizeYAML(vv)
		}
		return out
	case []any:
		for i, vv := range val {
			val[i] = normalizeYAML(vv)
		}
		return val
	default:
		return val
	}
}
