package format

import "testing"

func TestParseFileDispatchesByExtension(t *testing.T) {
	v, err := ParseFile("app.json", []byte(`{"foo": 1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", v)
	}
	if m["foo"] != float64(1) {
		t.Fatalf("got %v, want 1", m["foo"])
	}
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	_, err := ParseFile("app.toml", []byte(`foo = 1`))
	if _, ok := err.(*UnsupportedFormatError); !ok {
		t.Fatalf("expected *UnsupportedFormatError, got %T: %v", err, err)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	if _, ok := Lookup(".JSON"); !ok {
		t.Fatalf("expected .JSON to resolve to the json parser")
	}
	if _, ok := Lookup("yaml"); !ok {
		t.Fatalf("expected bare extension without a dot to resolve")
	}
}
