package spec

import (
	"testing"

	"github.com/goliatone/go-scan/scanerr"
)

func TestParse_BarePlaceholder(t *testing.T) {
	tokens, err := Parse("{}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != TokenPlaceholder {
		t.Fatalf("expected one placeholder, got %+v", tokens)
	}
	if tokens[0].Spec != nil {
		t.Error("bare placeholder must carry a nil spec")
	}
}

func TestParse_MixedTokens(t *testing.T) {
	tokens, err := Parse("name: {} age: {:d}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kinds := []TokenKind{}
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{
		TokenLiteral, TokenWhitespace, TokenPlaceholder,
		TokenWhitespace, TokenLiteral, TokenWhitespace, TokenPlaceholder,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(kinds), tokens)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: expected kind %v, got %v", i, want[i], kinds[i])
		}
	}

	if tokens[0].Literal != "name:" {
		t.Errorf("expected literal %q, got %q", "name:", tokens[0].Literal)
	}
	last := tokens[len(tokens)-1]
	if last.Spec == nil || last.Spec.Type != PresentationIntDecimal {
		t.Errorf("expected decimal spec, got %+v", last.Spec)
	}
}

func TestParse_SpecFields(t *testing.T) {
	cases := []struct {
		name   string
		format string
		want   Spec
	}{
		{"presentation string", "{:s}", Spec{Type: PresentationString}},
		{"presentation int generic", "{:i}", Spec{Type: PresentationIntGeneric}},
		{"presentation hex", "{:x}", Spec{Type: PresentationIntHex}},
		{"presentation float", "{:f}", Spec{Type: PresentationFloat}},
		{"localized", "{:L}", Spec{Localized: true}},
		{"localized with type", "{:Ls}", Spec{Localized: true, Type: PresentationString}},
		{"width", "{:10}", Spec{Width: 10}},
		{"align only", "{:>}", Spec{Align: AlignRight}},
		{"fill and align", "{:*<8}", Spec{Fill: '*', Align: AlignLeft, Width: 8}},
		{"everything", "{:.^4Ls}", Spec{Fill: '.', Align: AlignCenter, Width: 4, Localized: true, Type: PresentationString}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Parse(tc.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != 1 || tokens[0].Spec == nil {
				t.Fatalf("expected one placeholder with spec, got %+v", tokens)
			}
			if *tokens[0].Spec != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, *tokens[0].Spec)
			}
		})
	}
}

func TestParse_Escapes(t *testing.T) {
	tokens, err := Parse("{{}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != TokenLiteral || tokens[0].Literal != "{}" {
		t.Fatalf("expected literal braces, got %+v", tokens)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		format string
	}{
		{"unterminated placeholder", "{"},
		{"unterminated with spec", "{:d"},
		{"unmatched close", "}"},
		{"unknown presentation", "{:q}"},
		{"missing colon", "{d}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.format)
			if err == nil {
				t.Fatalf("expected error for %q", tc.format)
			}
			if scanerr.TextCode(err) != scanerr.CodeInvalidFormatString {
				t.Errorf("expected format string error, got %v", err)
			}
		})
	}
}

func TestParse_WhitespaceRunCollapses(t *testing.T) {
	tokens, err := Parse("a \t\n b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %+v", tokens)
	}
	if tokens[1].Kind != TokenWhitespace {
		t.Error("expected a single whitespace token between literals")
	}
}
