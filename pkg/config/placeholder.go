package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/devscast/confcore/pkg/env"
)

var placeholderRe = regexp.MustCompile(`%env\((?:((?i:string|number|boolean)):)?([A-Z0-9_]+)\)%`)

// PlaceholderResolver walks a merged tree, substituting "%env(NAME)%" and
// "%env(TYPE:NAME)%" tokens through a shared env.Accessor. It never
// re-scans its own output, so a resolved value containing literal
// "%env(...)%" text is left untouched.
type PlaceholderResolver struct {
	Accessor *env.Accessor
}

// Resolve returns a new tree with every placeholder substituted.
func (r PlaceholderResolver) Resolve(tree any) (any, error) {
	switch v := tree.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, vv := range v {
			resolved, err := r.Resolve(vv)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, vv := range v {
			resolved, err := r.Resolve(vv)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	case string:
		return r.resolveString(v)
	default:
		return v, nil
	}
}

func (r PlaceholderResolver) resolveString(s string) (any, error) {
	matches := placeholderRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	if len(matches) == 1 && matches[0][0] == 0 && matches[0][1] == len(s) {
		m := matches[0]
		return r.coerce(submatch(s, m, 1), submatch(s, m, 2))
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(s[last:m[0]])
		value, err := r.coerce(submatch(s, m, 1), submatch(s, m, 2))
		if err != nil {
			return nil, err
		}
		sb.WriteString(stringify(value))
		last = m[1]
	}
	sb.WriteString(s[last:])
	return sb.String(), nil
}

func submatch(s string, m []int, group int) string {
	lo, hi := m[2*group], m[2*group+1]
	if lo < 0 {
		return ""
	}
	return s[lo:hi]
}

func (r PlaceholderResolver) coerce(typ, name string) (any, error) {
	raw, err := r.Accessor.Read(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(typ) {
	case "number":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return math.NaN(), nil
		}
		return f, nil
	case "boolean":
		return coerceBool(raw), nil
	default:
		return raw, nil
	}
}

func coerceBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "y", "on":
		return true
	case "false", "0", "no", "n", "off":
		return false
	default:
		return raw != ""
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if math.IsNaN(val) {
			return "NaN"
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
