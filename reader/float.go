package reader

import (
	goerrors "errors"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-scan/input"
	"github.com/goliatone/go-scan/locale"
	"github.com/goliatone/go-scan/scanerr"
	"github.com/goliatone/go-scan/spec"
)

// floatMatcher scans decimal floating-point tokens plus the case-insensitive
// special forms inf, infinity, and nan.
type floatMatcher struct {
	bitSize int
}

func (m floatMatcher) read(in *input.Range) (float64, error) {
	save := in.Save()

	negative := false
	if c, ok := in.Peek(); ok && (c == '+' || c == '-') {
		in.Advance()
		negative = c == '-'
	}

	if v, ok := m.readSpecial(in); ok {
		if negative {
			return -v, nil
		}
		return v, nil
	}

	var lexeme strings.Builder
	if negative {
		lexeme.WriteByte('-')
	}

	digits := m.readDigits(in, &lexeme)

	if in.MatchRune('.') {
		lexeme.WriteByte('.')
		digits += m.readDigits(in, &lexeme)
	}

	if digits == 0 {
		in.Restore(save)
		return 0, scanerr.InvalidValue("numeric float: no digits")
	}

	m.readExponent(in, &lexeme)

	v, err := strconv.ParseFloat(lexeme.String(), m.bitSize)
	if err != nil {
		if goerrors.Is(err, strconv.ErrRange) {
			// ParseFloat saturates to ±Inf on range errors; accept the
			// saturated value the way strconv callers conventionally do.
			return v, nil
		}
		in.Restore(save)
		return 0, scanerr.InvalidValue("numeric float: no match")
	}
	return v, nil
}

func (m floatMatcher) readSpecial(in *input.Range) (float64, bool) {
	if in.MatchLiteralFold("infinity") || in.MatchLiteralFold("inf") {
		return math.Inf(1), true
	}
	if in.MatchLiteralFold("nan") {
		return math.NaN(), true
	}
	return 0, false
}

func (m floatMatcher) readDigits(in *input.Range, lexeme *strings.Builder) int {
	n := 0
	for {
		c, ok := in.Peek()
		if !ok || c < '0' || c > '9' {
			return n
		}
		in.Advance()
		lexeme.WriteRune(c)
		n++
	}
}

// readExponent consumes an exponent part when one is fully present. A bare
// trailing 'e' is left unconsumed so "2e" scans as 2 with "e" remaining.
func (m floatMatcher) readExponent(in *input.Range, lexeme *strings.Builder) {
	save := in.Save()
	var exp strings.Builder

	if !in.MatchRune('e') {
		if !in.MatchRune('E') {
			return
		}
		exp.WriteByte('E')
	} else {
		exp.WriteByte('e')
	}

	if c, ok := in.Peek(); ok && (c == '+' || c == '-') {
		in.Advance()
		exp.WriteRune(c)
	}

	if m.readDigits(in, &exp) == 0 {
		in.Restore(save)
		return
	}

	lexeme.WriteString(exp.String())
}

// Float reads floating-point values.
type Float struct {
	BitSize int
}

func (r Float) bits() int {
	if r.BitSize == 0 {
		return 64
	}
	return r.BitSize
}

func (r Float) CheckSpec(s *spec.Spec) error {
	return spec.CheckFloat(s)
}

// ReadDefault scans a decimal float. The locale argument exists for interface
// uniformity; localized numeric forms are not supported.
func (r Float) ReadDefault(in *input.Range, loc locale.Reference) (float64, error) {
	_ = loc
	return floatMatcher{bitSize: r.bits()}.read(in)
}

func (r Float) ReadWithSpec(in *input.Range, s *spec.Spec, loc locale.Reference) (float64, error) {
	_ = loc
	return floatMatcher{bitSize: r.bits()}.read(in)
}
