package clog

import (
	"fmt"
	"regexp"
)

const maskedValue = "[REDACTED]"

var defaultSensitiveKeys = regexp.MustCompile(`(?i)(password|secret|token|api[_-]?key|credential|private[_-]?key|^key$)`)

// Redactor masks configuration secrets before they reach a log line. It
// matches on the field name a value is being logged under, not on the
// value's shape, so any string sourced from a "%env(...)%" placeholder
// named e.g. DB_PASSWORD is masked regardless of what it resolved to.
type Redactor struct {
	keyPattern *regexp.Regexp
}

// NewRedactor returns a Redactor using pattern to match sensitive key
// names. A nil pattern uses the built-in default (password, secret,
// token, api_key, credential, private_key, key).
func NewRedactor(pattern *regexp.Regexp) *Redactor {
	if pattern == nil {
		pattern = defaultSensitiveKeys
	}
	return &Redactor{keyPattern: pattern}
}

// Redact returns maskedValue if key looks sensitive, otherwise value
// unchanged.
func (r *Redactor) Redact(key string, value any) any {
	if r == nil || !r.keyPattern.MatchString(key) {
		return value
	}
	return maskedValue
}

// RedactTree walks a configuration tree, masking every map value whose
// key looks sensitive; such a value is replaced whole, even when it is a
// nested map or array. Used by "confcore load" so a resolved "%env(...)%"
// secret never reaches stdout.
func (r *Redactor) RedactTree(tree any) any {
	switch v := tree.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, vv := range v {
			if r != nil && r.keyPattern.MatchString(k) {
				out[k] = maskedValue
				continue
			}
			out[k] = r.RedactTree(vv)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, vv := range v {
			out[i] = r.RedactTree(vv)
		}
		return out
	default:
		return v
	}
}

// RedactString masks value outright, for call sites that already know
// the string is sensitive (e.g. an accessor read keyed by a known-secret
// name) without needing a map key to test against.
func RedactString(value string) string {
	if value == "" {
		return value
	}
	return fmt.Sprintf("%s(%d bytes)", maskedValue, len(value))
}
