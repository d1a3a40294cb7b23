package format

import (
	"bytes"
	"encoding/json"
)

type jsonParser struct{}

func (jsonParser) Extensions() []string { return []string{".json"} }

func (jsonParser) Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeJSON(v), nil
}

// normalizeJSON rewrites json.Number leaves as float64 so every parser in
// this package produces the same numeric representation.
func normalizeJSON(v any) any {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val.String()
		}
		return f
	case map[string]any:
		for k, vv := range val {
			val[k] = normalizeJSON(vv)
		}
		return val
	case []any:
		for i, vv := range val {
			val[i] = normalizeJSON(vv)
		}
		return val
	default:
		return val
	}
}
