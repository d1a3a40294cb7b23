/*
Package testutil supplies a minimal struct-tag validator for exercising
Composer in tests, in the style of go-playground/validator's "validate"
struct tags, without adding that dependency to confcore itself — the
schema validator is an external collaborator the caller supplies, so a
production dependency on a specific validation library would bind a
choice this module deliberately leaves open.
*/
package testutil

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/devscast/confcore/pkg/config"
)

// StructValidator decodes a merged, placeholder-resolved tree into a new
// T via a JSON round-trip, then checks "validate:\"required\"" struct
// tags on T's fields.
type StructValidator[T any] struct{}

func (StructValidator[T]) SafeParse(value any) (config.Result, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return config.Result{}, fmt.Errorf("testutil: marshal tree: %w", err)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return config.Result{}, fmt.Errorf("testutil: unmarshal tree into %T: %w", out, err)
	}

	issues := checkRequired(reflect.ValueOf(&out).Elem(), "")
	if len(issues) > 0 {
		return config.Result{OK: false, Issues: issues}, nil
	}
	return config.Result{OK: true, Data: out}, nil
}

func checkRequired(v reflect.Value, path string) []config.Issue {
	var issues []config.Issue
	if v.Kind() != reflect.Struct {
		return issues
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)
		fieldPath := field.Name
		if path != "" {
			fieldPath = path + "." + field.Name
		}

		if strings.Contains(field.Tag.Get("validate"), "required") && fv.IsZero() {
			issues = append(issues, config.Issue{Path: fieldPath, Message: "is required"})
		}

		switch fv.Kind() {
		case reflect.Struct:
			issues = append(issues, checkRequired(fv, fieldPath)...)
		case reflect.Ptr:
			if !fv.IsNil() && fv.Elem().Kind() == reflect.Struct {
				issues = append(issues, checkRequired(fv.Elem(), fieldPath)...)
			}
		}
	}
	return issues
}
