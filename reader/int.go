package reader

import (
	goerrors "errors"
	"strconv"
	"strings"

	"github.com/goliatone/go-scan/input"
	"github.com/goliatone/go-scan/locale"
	"github.com/goliatone/go-scan/scanerr"
	"github.com/goliatone/go-scan/spec"
)

// intMatcher scans integer tokens: an optional sign, an optional base prefix,
// then digits of the selected base. The matched lexeme is finished by strconv
// so range checks stay in one place.
type intMatcher struct {
	bitSize int
	signed  bool
}

// baseFor returns the digit base for a presentation, or 0 when the base must
// be detected from a prefix.
func baseFor(pres spec.Presentation) int {
	switch pres {
	case spec.PresentationIntDecimal:
		return 10
	case spec.PresentationIntBinary:
		return 2
	case spec.PresentationIntOctal:
		return 8
	case spec.PresentationIntHex:
		return 16
	default:
		return 0
	}
}

func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// matchPrefix consumes a base prefix like 0x when present. Detection rewinds
// when the prefix is not followed by a digit of the implied base, so a bare
// "0" still scans as zero.
func matchPrefix(in *input.Range, base int) bool {
	var prefixes []string
	switch base {
	case 2:
		prefixes = []string{"0b", "0B"}
	case 8:
		prefixes = []string{"0o", "0O"}
	case 16:
		prefixes = []string{"0x", "0X"}
	default:
		return false
	}

	save := in.Save()
	for _, p := range prefixes {
		if !in.MatchLiteral(p) {
			continue
		}
		if c, ok := in.Peek(); ok {
			if d := digitValue(c); d >= 0 && d < base {
				return true
			}
		}
		in.Restore(save)
		return false
	}
	return false
}

func detectBase(in *input.Range) int {
	for _, candidate := range []int{16, 2, 8} {
		if matchPrefix(in, candidate) {
			return candidate
		}
	}
	return 10
}

func (m intMatcher) read(in *input.Range, pres spec.Presentation) (string, int, error) {
	save := in.Save()

	var lexeme strings.Builder
	if c, ok := in.Peek(); ok && (c == '+' || c == '-') {
		if c == '-' && !m.signed {
			return "", 0, scanerr.InvalidValue("numeric integer: negative value for unsigned target")
		}
		in.Advance()
		if c == '-' {
			lexeme.WriteRune(c)
		}
	}

	base := baseFor(pres)
	if base == 0 {
		base = 10
		if pres == spec.PresentationIntGeneric {
			base = detectBase(in)
		}
	} else {
		matchPrefix(in, base)
	}

	digits := 0
	for {
		c, ok := in.Peek()
		if !ok {
			break
		}
		d := digitValue(c)
		if d < 0 || d >= base {
			break
		}
		in.Advance()
		lexeme.WriteRune(c)
		digits++
	}

	if digits == 0 {
		in.Restore(save)
		return "", 0, scanerr.InvalidValue("numeric integer: no digits")
	}

	return lexeme.String(), base, nil
}

func (m intMatcher) readSigned(in *input.Range, pres spec.Presentation) (int64, error) {
	save := in.Save()
	lexeme, base, err := m.read(in, pres)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(lexeme, base, m.bitSize)
	if err != nil {
		in.Restore(save)
		if goerrors.Is(err, strconv.ErrRange) {
			return 0, scanerr.InvalidValue("numeric integer: value out of range for int%d", m.bitSize)
		}
		return 0, scanerr.InvalidValue("numeric integer: no match")
	}
	return v, nil
}

func (m intMatcher) readUnsigned(in *input.Range, pres spec.Presentation) (uint64, error) {
	save := in.Save()
	lexeme, base, err := m.read(in, pres)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(lexeme, base, m.bitSize)
	if err != nil {
		in.Restore(save)
		if goerrors.Is(err, strconv.ErrRange) {
			return 0, scanerr.InvalidValue("numeric integer: value out of range for uint%d", m.bitSize)
		}
		return 0, scanerr.InvalidValue("numeric integer: no match")
	}
	return v, nil
}

// Int reads signed integers up to the given bit size.
type Int struct {
	BitSize int
}

func (r Int) bits() int {
	if r.BitSize == 0 {
		return 64
	}
	return r.BitSize
}

func (r Int) CheckSpec(s *spec.Spec) error {
	return spec.CheckInt(s)
}

// ReadDefault scans a decimal integer. The locale argument exists for
// interface uniformity.
func (r Int) ReadDefault(in *input.Range, loc locale.Reference) (int64, error) {
	_ = loc
	return intMatcher{bitSize: r.bits(), signed: true}.readSigned(in, spec.PresentationDefault)
}

// ReadWithSpec scans with the base selected by the presentation. Localized
// integer matching (digit grouping) is not supported; the localized flag
// falls back to classic matching.
func (r Int) ReadWithSpec(in *input.Range, s *spec.Spec, loc locale.Reference) (int64, error) {
	_ = loc
	return intMatcher{bitSize: r.bits(), signed: true}.readSigned(in, s.Type)
}

// Uint reads unsigned integers up to the given bit size.
type Uint struct {
	BitSize int
}

func (r Uint) bits() int {
	if r.BitSize == 0 {
		return 64
	}
	return r.BitSize
}

func (r Uint) CheckSpec(s *spec.Spec) error {
	return spec.CheckInt(s)
}

func (r Uint) ReadDefault(in *input.Range, loc locale.Reference) (uint64, error) {
	_ = loc
	return intMatcher{bitSize: r.bits(), signed: false}.readUnsigned(in, spec.PresentationDefault)
}

func (r Uint) ReadWithSpec(in *input.Range, s *spec.Spec, loc locale.Reference) (uint64, error) {
	_ = loc
	return intMatcher{bitSize: r.bits(), signed: false}.readUnsigned(in, s.Type)
}
