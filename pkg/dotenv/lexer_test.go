package dotenv

import (
	"strings"
	"testing"
)

func parse(t *testing.T, penv ProcessEnv, text string) map[string]string {
	t.Helper()
	if penv == nil {
		penv = newFakeEnv()
	}
	l := &Lexer{ProcessEnv: penv}
	values, err := l.Parse([]byte(text), "test.env")
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", text, err)
	}
	return values
}

func TestParseBasicAssignments(t *testing.T) {
	values := parse(t, nil, "FOO=bar\nBAZ=qux\n")
	if values["FOO"] != "bar" || values["BAZ"] != "qux" {
		t.Fatalf("unexpected values: %#v", values)
	}
}

func TestParseExportPrefix(t *testing.T) {
	values := parse(t, nil, "export FOO=bar\n")
	if values["FOO"] != "bar" {
		t.Fatalf("unexpected values: %#v", values)
	}
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	values := parse(t, nil, "# a comment\n\nFOO=bar # trailing comment\n")
	if len(values) != 1 || values["FOO"] != "bar" {
		t.Fatalf("unexpected values: %#v", values)
	}
}

func TestParseQuoting(t *testing.T) {
	values := parse(t, nil, `SINGLE='raw $NOEXPAND'
DOUBLE="line1\nline2"
BARE=plain
`)
	if values["SINGLE"] != "raw $NOEXPAND" {
		t.Fatalf("single quoted: got %q", values["SINGLE"])
	}
	if values["DOUBLE"] != "line1\nline2" {
		t.Fatalf("double quoted escapes: got %q", values["DOUBLE"])
	}
	if values["BARE"] != "plain" {
		t.Fatalf("bare: got %q", values["BARE"])
	}
}

func TestParseHashNotPrecededByWhitespaceIsLiteral(t *testing.T) {
	values := parse(t, nil, "FOO=bar#baz\n")
	if values["FOO"] != "bar#baz" {
		t.Fatalf("got %q, want literal hash retained", values["FOO"])
	}
}

func TestParseInterpolation(t *testing.T) {
	penv := newFakeEnv("HOST=example.com")
	values := parse(t, penv, `URL="https://${HOST}/path"
PLAIN=$HOST
`)
	if values["URL"] != "https://example.com/path" {
		t.Fatalf("braced interpolation: got %q", values["URL"])
	}
	if values["PLAIN"] != "example.com" {
		t.Fatalf("bare interpolation: got %q", values["PLAIN"])
	}
}

func TestParseDefaultModifiers(t *testing.T) {
	values := parse(t, nil, `A="${UNSET:-fallback}"
B="${UNSET2:=assigned}"
C=$UNSET2
`)
	if values["A"] != "fallback" {
		t.Fatalf("':-' default: got %q", values["A"])
	}
	if values["B"] != "assigned" {
		t.Fatalf("':=' default: got %q", values["B"])
	}
	if values["C"] != "assigned" {
		t.Fatalf("':=' should persist for later lookups: got %q", values["C"])
	}
}

func TestParseEscapedDollarIsLiteral(t *testing.T) {
	values := parse(t, nil, `FOO="price: \$5"` + "\n")
	if values["FOO"] != "price: $5" {
		t.Fatalf("got %q, want literal dollar", values["FOO"])
	}
}

func TestParseFormatErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"value with unquoted space", "FOO=BAR BAZ\n"},
		{"name with embedded space", "FOO BAR=BAR\n"},
		{"missing equals", "FOO\n"},
		{"unterminated double quote", `FOO="foo` + "\n"},
		{"unclosed brace expansion", "FOO=${FOO\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLexer()
			l.ProcessEnv = newFakeEnv()
			_, err := l.Parse([]byte(tc.text), "bad.env")
			if err == nil {
				t.Fatalf("expected a FormatError, got nil")
			}
			if _, ok := err.(*FormatError); !ok {
				t.Fatalf("expected *FormatError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseRejectsBOM(t *testing.T) {
	text := "\xEF\xBB\xBFFOO=bar\n"
	l := NewLexer()
	l.ProcessEnv = newFakeEnv()
	_, err := l.Parse([]byte(text), "bom.env")
	if err == nil {
		t.Fatalf("expected BOM to be rejected")
	}
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Line != 1 || fe.Column != 1 {
		t.Fatalf("expected line 1 column 1, got %d:%d", fe.Line, fe.Column)
	}
}

func TestParseCRLFNormalised(t *testing.T) {
	values := parse(t, nil, "FOO=bar\r\nBAZ=qux\r\n")
	if values["FOO"] != "bar" || values["BAZ"] != "qux" {
		t.Fatalf("unexpected values: %#v", values)
	}
}

func TestParseErrorIncludesLineAndColumn(t *testing.T) {
	l := NewLexer()
	l.ProcessEnv = newFakeEnv()
	_, err := l.Parse([]byte("FOO=bar\nBAD LINE\n"), "multi.env")
	if err == nil {
		t.Fatalf("expected error")
	}
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Line != 2 {
		t.Fatalf("expected error on line 2, got %d", fe.Line)
	}
	if !strings.Contains(fe.Error(), "multi.env:2:") {
		t.Fatalf("expected path/line prefix, got %q", fe.Error())
	}
}

func TestProcessEnvPrecedenceOverLoadedValue(t *testing.T) {
	penv := newFakeEnv("FOO=from-process")
	l := &Lexer{ProcessEnv: penv}
	values, err := l.Parse([]byte("FOO=from-file\nBAR=$FOO\n"), "precedence.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["BAR"] != "from-process" {
		t.Fatalf("expected process env to win when FOO isn't loaded-by-us, got %q", values["BAR"])
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	text := []byte(`export APP_ENV=dev
DATABASE_URL="postgres://${DB_USER:-app}:${DB_PASS:-secret}@localhost/app"
FEATURE_FLAG=on
# comment line
GREETING='hello world'
`)
	l := &Lexer{ProcessEnv: newFakeEnv()}
	for i := 0; i < b.N; i++ {
		if _, err := l.Parse(text, "bench.env"); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
