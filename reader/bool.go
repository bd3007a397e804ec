package reader

import (
	"github.com/goliatone/go-scan/input"
	"github.com/goliatone/go-scan/locale"
	"github.com/goliatone/go-scan/scanerr"
	"github.com/goliatone/go-scan/spec"
)

// boolMatcher runs the enabled strategies against a range. Each strategy
// fails without consuming input, so the next one starts from the same
// position.
type boolMatcher struct {
	opts Options
}

func (m boolMatcher) readNumeric(in *input.Range) (bool, error) {
	if in.MatchRune('0') {
		return false, nil
	}
	if in.MatchRune('1') {
		return true, nil
	}
	return false, scanerr.InvalidValue("numeric boolean: no match")
}

func (m boolMatcher) readTextClassic(in *input.Range) (bool, error) {
	if in.MatchLiteral("true") {
		return true, nil
	}
	if in.MatchLiteral("false") {
		return false, nil
	}
	return false, scanerr.InvalidValue("textual boolean: no match")
}

// readTextLocalized matches the locale spellings shortest first. The two
// names may differ in length, so trying the shorter candidate first bounds
// wasted comparisons; the boolean value travels with the spelling, not with
// textual order. Ties go to the true spelling.
func (m boolMatcher) readTextLocalized(in *input.Range, names locale.Names) (bool, error) {
	shorter, shorterValue := names.True, true
	longer, longerValue := names.False, false
	if len(names.True) > len(names.False) {
		shorter, shorterValue = names.False, false
		longer, longerValue = names.True, true
	}

	if in.MatchLiteral(shorter) {
		return shorterValue, nil
	}
	if in.MatchLiteral(longer) {
		return longerValue, nil
	}
	return false, scanerr.InvalidValue("textual boolean: no match")
}

// readClassic attempts the enabled strategies in priority order with
// locale-independent spellings. On total failure the returned error is the
// last attempted strategy's error; with no strategy enabled the seed error
// survives. The overwrite order is pinned observable behavior, not a stable
// contract.
func (m boolMatcher) readClassic(in *input.Range) (bool, error) {
	err := scanerr.InvalidValue("failed to read boolean")

	for _, s := range m.opts.Strategies() {
		var value bool
		var attempt error
		switch s {
		case StrategyNumeric:
			value, attempt = m.readNumeric(in)
		case StrategyText:
			value, attempt = m.readTextClassic(in)
		default:
			continue
		}
		if attempt == nil {
			return value, nil
		}
		err = attempt
	}

	return false, err
}

// readLocalized is readClassic with the text strategy's spellings supplied by
// the locale. The numeric strategy stays locale-independent.
func (m boolMatcher) readLocalized(in *input.Range, loc locale.Reference) (bool, error) {
	err := scanerr.InvalidValue("failed to read boolean")

	for _, s := range m.opts.Strategies() {
		var value bool
		var attempt error
		switch s {
		case StrategyNumeric:
			value, attempt = m.readNumeric(in)
		case StrategyText:
			var names locale.Names
			names, attempt = loc.Names()
			if attempt == nil {
				value, attempt = m.readTextLocalized(in, names)
			}
		default:
			continue
		}
		if attempt == nil {
			return value, nil
		}
		err = attempt
	}

	return false, err
}

// Bool is the boolean reader. It is stateless; every read is a pure function
// of its arguments.
type Bool struct{}

// CheckSpec validates the format spec for a boolean target. Violations are
// spec errors, never value errors.
func (Bool) CheckSpec(s *spec.Spec) error {
	return spec.CheckBool(s)
}

// ReadDefault scans with default options through the classic path. The locale
// argument exists only for interface uniformity with the other readers.
func (Bool) ReadDefault(in *input.Range, loc locale.Reference) (bool, error) {
	_ = loc
	return boolMatcher{opts: DefaultOptions()}.readClassic(in)
}

// ReadWithSpec derives options from the spec and routes to localized matching
// when the spec asks for it.
func (Bool) ReadWithSpec(in *input.Range, s *spec.Spec, loc locale.Reference) (bool, error) {
	m := boolMatcher{opts: OptionsForSpec(s)}
	if s.Localized {
		return m.readLocalized(in, loc)
	}
	return m.readClassic(in)
}
