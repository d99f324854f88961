package unescape

import (
	"errors"
	"testing"

	"github.com/dshills/splice/buffer"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		escaped string
		want    string
	}{
		{"no escapes", "hello", "hello"},
		{"newline", `a\nb`, "a\nb"},
		{"tab", `col1\tcol2`, "col1\tcol2"},
		{"quote", `say \"hi\"`, `say "hi"`},
		{"backslash", `c:\\temp`, `c:\temp`},
		{"solidus", `a\/b`, "a/b"},
		{"control escapes", `\b\f\r`, "\b\f\r"},
		{"unicode escape", `\u0041BC`, "ABC"},
		{"unicode multibyte", `\u00e9`, "é"},
		{"surrogate pair", `\ud83d\ude00`, "😀"},
		{"multibyte passthrough", "héllo wörld", "héllo wörld"},
		{"mixed", `line1\nline2\t\u2713`, "line1\nline2\t✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.NewFromString(tt.escaped)

			if err := Literal(b); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, b.String())
			}
			if b.Len() != len(tt.want) {
				t.Errorf("expected length %d, got %d", len(tt.want), b.Len())
			}
			if b.Cap() != len(tt.escaped) {
				t.Errorf("capacity should stay %d, got %d", len(tt.escaped), b.Cap())
			}
		})
	}
}

func TestLiteralKeepsIdentity(t *testing.T) {
	b := buffer.NewFromString(`a\nb`)
	id := b.ID()

	if err := Literal(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID() != id {
		t.Error("decoding should not change the buffer's identity")
	}
	if b.Len() != 3 {
		t.Errorf("expected 3 decoded bytes, got %d", b.Len())
	}
}

func TestLiteralErrors(t *testing.T) {
	tests := []struct {
		name    string
		escaped string
	}{
		{"unknown escape", `bad \q escape`},
		{"trailing backslash", `end\`},
		{"truncated unicode", `\u00`},
		{"bad hex digit", `\u00gz`},
		{"lone high surrogate", `\ud800x`},
		{"lone low surrogate", `\udc00\udc00`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.NewFromString(tt.escaped)

			err := Literal(b)
			if !errors.Is(err, ErrBadEscape) {
				t.Fatalf("expected ErrBadEscape, got %v", err)
			}
			if b.String() != tt.escaped {
				t.Errorf("buffer should be unchanged on error, got %q", b.String())
			}
		})
	}
}
