package spec

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-scan/scanerr"
)

// TokenKind discriminates the three things a format string can contain.
type TokenKind int

const (
	// TokenLiteral must match the input verbatim.
	TokenLiteral TokenKind = iota
	// TokenWhitespace matches any run of input whitespace, including none.
	TokenWhitespace
	// TokenPlaceholder consumes one scan argument using its Spec.
	TokenPlaceholder
)

// Token is one element of a parsed format string.
type Token struct {
	Kind    TokenKind
	Literal string
	Spec    *Spec
}

// Parse tokenizes a scan format string.
//
// Grammar per placeholder: "{}" or "{:[[fill]align][width][L][type]}".
// "{{" and "}}" escape literal braces. Runs of whitespace in the format
// collapse into a single whitespace token.
func Parse(format string) ([]Token, error) {
	var tokens []Token
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenLiteral, Literal: literal.String()})
			literal.Reset()
		}
	}

	rest := format
	for len(rest) > 0 {
		c, size := utf8.DecodeRuneInString(rest)
		switch {
		case strings.HasPrefix(rest, "{{"):
			literal.WriteByte('{')
			rest = rest[2:]
		case strings.HasPrefix(rest, "}}"):
			literal.WriteByte('}')
			rest = rest[2:]
		case c == '{':
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return nil, scanerr.InvalidFormat("format string: unterminated placeholder in %q", format)
			}
			sp, err := parseSpec(rest[1:end], format)
			if err != nil {
				return nil, err
			}
			flushLiteral()
			tokens = append(tokens, Token{Kind: TokenPlaceholder, Spec: sp})
			rest = rest[end+1:]
		case c == '}':
			return nil, scanerr.InvalidFormat("format string: unmatched '}' in %q", format)
		case isSpace(c):
			flushLiteral()
			for len(rest) > 0 {
				c, size = utf8.DecodeRuneInString(rest)
				if !isSpace(c) {
					break
				}
				rest = rest[size:]
			}
			tokens = append(tokens, Token{Kind: TokenWhitespace})
		default:
			literal.WriteRune(c)
			rest = rest[size:]
		}
	}
	flushLiteral()

	return tokens, nil
}

// parseSpec parses the inside of one placeholder, brace-stripped. A bare
// "{}" yields a nil Spec, which the dispatcher routes to the default read.
func parseSpec(body, format string) (*Spec, error) {
	if body == "" {
		return nil, nil
	}
	sp := &Spec{}
	if body[0] != ':' {
		return nil, scanerr.InvalidFormat("format string: placeholder %q must be empty or start with ':' in %q", "{"+body+"}", format)
	}
	body = body[1:]

	// [[fill]align]
	if body != "" {
		first, firstSize := utf8.DecodeRuneInString(body)
		if firstSize < len(body) {
			second, _ := utf8.DecodeRuneInString(body[firstSize:])
			if a := alignFor(second); a != AlignNone {
				sp.Fill = first
				sp.Align = a
				body = body[firstSize+1:]
			}
		}
		if sp.Align == AlignNone {
			if a := alignFor(first); a != AlignNone {
				sp.Align = a
				body = body[firstSize:]
			}
		}
	}

	// [width]
	for len(body) > 0 && body[0] >= '0' && body[0] <= '9' {
		sp.Width = sp.Width*10 + int(body[0]-'0')
		body = body[1:]
	}

	// [L]
	if strings.HasPrefix(body, "L") {
		sp.Localized = true
		body = body[1:]
	}

	// [type]
	if body != "" {
		t, ok := presentationFor(body)
		if !ok {
			return nil, scanerr.InvalidFormat("format string: unknown presentation %q in %q", body, format)
		}
		sp.Type = t
	}

	if err := CheckCommon(sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func alignFor(c rune) Align {
	switch c {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	case '^':
		return AlignCenter
	default:
		return AlignNone
	}
}

func presentationFor(s string) (Presentation, bool) {
	switch s {
	case "s":
		return PresentationString, true
	case "i":
		return PresentationIntGeneric, true
	case "d":
		return PresentationIntDecimal, true
	case "b":
		return PresentationIntBinary, true
	case "o":
		return PresentationIntOctal, true
	case "x":
		return PresentationIntHex, true
	case "f":
		return PresentationFloat, true
	default:
		return PresentationDefault, false
	}
}

func isSpace(c rune) bool {
	return unicode.IsSpace(c)
}
