package config

import (
	"errors"
	"math"
	"testing"

	"github.com/devscast/confcore/pkg/dotenv"
	"github.com/devscast/confcore/pkg/env"
)

type fakeProcessEnv struct {
	vars map[string]string
}

func (f *fakeProcessEnv) Getenv(key string) string { return f.vars[key] }
func (f *fakeProcessEnv) LookupEnv(key string) (string, bool) {
	v, ok := f.vars[key]
	return v, ok
}
func (f *fakeProcessEnv) Setenv(key, value string) error {
	f.vars[key] = value
	return nil
}
func (f *fakeProcessEnv) Environ() []string {
	out := make([]string, 0, len(f.vars))
	for k, v := range f.vars {
		out = append(out, k+"="+v)
	}
	return out
}

var _ dotenv.ProcessEnv = (*fakeProcessEnv)(nil)

func newAccessor(vars map[string]string) *env.Accessor {
	return env.New(&fakeProcessEnv{vars: vars})
}

func TestPlaceholderResolverWholeStringYieldsNativeType(t *testing.T) {
	r := PlaceholderResolver{Accessor: newAccessor(map[string]string{"PORT": "8080"})}
	got, err := r.Resolve(map[string]any{"port": "%env(number:PORT)%"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := got.(map[string]any)
	if m["port"] != 8080.0 {
		t.Fatalf("got %#v, want 8080.0", m["port"])
	}
}

func TestPlaceholderResolverPartialMatchStringifies(t *testing.T) {
	r := PlaceholderResolver{Accessor: newAccessor(map[string]string{"PORT": "8080"})}
	got, err := r.Resolve(map[string]any{"url": "http://h:%env(number:PORT)%"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := got.(map[string]any)
	if m["url"] != "http://h:8080" {
		t.Fatalf("got %#v", m["url"])
	}
}

func TestPlaceholderResolverBooleanCoercion(t *testing.T) {
	r := PlaceholderResolver{Accessor: newAccessor(map[string]string{"FLAG": "yes"})}
	got, err := r.Resolve(map[string]any{"flag": "%env(boolean:FLAG)%"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(map[string]any)["flag"] != true {
		t.Fatalf("got %#v, want true", got.(map[string]any)["flag"])
	}
}

func TestPlaceholderResolverStringTypeIsRaw(t *testing.T) {
	r := PlaceholderResolver{Accessor: newAccessor(map[string]string{"NAME": "demo"})}
	got, err := r.Resolve(map[string]any{"name": "%env(NAME)%"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(map[string]any)["name"] != "demo" {
		t.Fatalf("got %#v", got.(map[string]any)["name"])
	}
}

func TestPlaceholderResolverInvalidNumberYieldsNaNSentinel(t *testing.T) {
	r := PlaceholderResolver{Accessor: newAccessor(map[string]string{"PORT": "not-a-number"})}
	got, err := r.Resolve(map[string]any{"port": "%env(number:PORT)%"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, ok := got.(map[string]any)["port"].(float64)
	if !ok || !math.IsNaN(f) {
		t.Fatalf("got %#v, want a NaN sentinel", got.(map[string]any)["port"])
	}
}

func TestPlaceholderResolverMissingEnvSurfaces(t *testing.T) {
	r := PlaceholderResolver{Accessor: newAccessor(map[string]string{})}
	_, err := r.Resolve(map[string]any{"x": "%env(MISSING)%"})
	var missing *env.MissingEnvError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *env.MissingEnvError, got %T: %v", err, err)
	}
}

func TestPlaceholderResolverNoPlaceholdersIsStructurallyIdentical(t *testing.T) {
	r := PlaceholderResolver{Accessor: newAccessor(map[string]string{})}
	tree := map[string]any{"a": 1.0, "b": []any{"x", "y"}}
	got, err := r.Resolve(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := got.(map[string]any)
	if m["a"] != 1.0 {
		t.Fatalf("got %#v", m["a"])
	}
	arr := m["b"].([]any)
	if arr[0] != "x" || arr[1] != "y" {
		t.Fatalf("got %#v", arr)
	}
}
