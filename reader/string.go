package reader

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-scan/input"
	"github.com/goliatone/go-scan/locale"
	"github.com/goliatone/go-scan/scanerr"
	"github.com/goliatone/go-scan/spec"
)

// String reads a run of non-whitespace runes, scanf-word style. A spec width
// caps the number of runes consumed.
type String struct{}

func (String) CheckSpec(s *spec.Spec) error {
	return spec.CheckString(s)
}

func (String) ReadDefault(in *input.Range, loc locale.Reference) (string, error) {
	_ = loc
	return readWord(in, 0)
}

func (String) ReadWithSpec(in *input.Range, s *spec.Spec, loc locale.Reference) (string, error) {
	_ = loc
	return readWord(in, s.Width)
}

func readWord(in *input.Range, maxRunes int) (string, error) {
	var word strings.Builder
	n := 0
	for {
		if maxRunes > 0 && n >= maxRunes {
			break
		}
		c, ok := in.Peek()
		if !ok || unicode.IsSpace(c) {
			break
		}
		in.Advance()
		word.WriteRune(c)
		n++
	}
	if n == 0 {
		return "", scanerr.InvalidValue("textual string: no match")
	}
	return word.String(), nil
}
