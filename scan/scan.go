// Package scan is the public entry point: it parses a format string and
// scans typed values out of an input string, dispatching each placeholder to
// the reader for its argument's type.
package scan

import (
	"strconv"

	"github.com/goliatone/go-scan/input"
	"github.com/goliatone/go-scan/locale"
	"github.com/goliatone/go-scan/logger"
	"github.com/goliatone/go-scan/reader"
	"github.com/goliatone/go-scan/scanerr"
	"github.com/goliatone/go-scan/spec"
)

// Scanner binds a locale reference and a logger to scan calls. The zero-ish
// scanner from NewScanner scans with classic spellings.
type Scanner struct {
	loc    locale.Reference
	logger logger.Logger
}

func NewScanner() *Scanner {
	return &Scanner{logger: logger.Noop{}}
}

func (s *Scanner) WithLocale(ref locale.Reference) *Scanner {
	s.loc = ref
	return s
}

func (s *Scanner) WithLogger(l logger.Logger) *Scanner {
	if l != nil {
		s.logger = l
	}
	return s
}

// Scan matches source against format and assigns each placeholder's value
// through the corresponding pointer argument. It returns the unconsumed tail
// of source. On error, arguments already scanned keep their values and the
// tail reflects the failure position; the argument that failed is untouched.
//
// Format rules: literal text must match the input exactly, a whitespace run
// matches any input whitespace run (including none), and each placeholder
// skips leading input whitespace before its reader runs.
func (s *Scanner) Scan(source, format string, args ...any) (string, error) {
	tokens, err := spec.Parse(format)
	if err != nil {
		return source, err
	}

	placeholders := 0
	for _, tok := range tokens {
		if tok.Kind == spec.TokenPlaceholder {
			placeholders++
		}
	}
	if placeholders != len(args) {
		return source, scanerr.InvalidFormat(
			"format string: %d placeholders for %d arguments", placeholders, len(args))
	}

	in := input.NewRange(source)
	argi := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case spec.TokenWhitespace:
			in.SkipWhitespace()
		case spec.TokenLiteral:
			if !in.MatchLiteral(tok.Literal) {
				return in.Remaining(), scanerr.InvalidValue("literal %q does not match input", tok.Literal)
			}
		case spec.TokenPlaceholder:
			in.SkipWhitespace()
			if err := s.scanArg(in, tok.Spec, args[argi]); err != nil {
				s.logger.Debug("placeholder %d failed: %v", argi, err)
				return in.Remaining(), err
			}
			argi++
		}
	}

	return in.Remaining(), nil
}

// scanArg dispatches one placeholder to the reader for the argument's
// concrete type. The supported set is closed; anything else is an
// unsupported-target error. Values are assigned only on the success path.
func (s *Scanner) scanArg(in *input.Range, sp *spec.Spec, arg any) error {
	switch target := arg.(type) {
	case *bool:
		return scanInto(target, reader.Bool{}, in, sp, s.loc)
	case *int:
		return scanIntInto(target, strconv.IntSize, in, sp, s.loc)
	case *int8:
		return scanIntInto(target, 8, in, sp, s.loc)
	case *int16:
		return scanIntInto(target, 16, in, sp, s.loc)
	case *int32:
		return scanIntInto(target, 32, in, sp, s.loc)
	case *int64:
		return scanIntInto(target, 64, in, sp, s.loc)
	case *uint:
		return scanUintInto(target, strconv.IntSize, in, sp, s.loc)
	case *uint8:
		return scanUintInto(target, 8, in, sp, s.loc)
	case *uint16:
		return scanUintInto(target, 16, in, sp, s.loc)
	case *uint32:
		return scanUintInto(target, 32, in, sp, s.loc)
	case *uint64:
		return scanUintInto(target, 64, in, sp, s.loc)
	case *float32:
		return scanFloatInto(target, 32, in, sp, s.loc)
	case *float64:
		return scanFloatInto(target, 64, in, sp, s.loc)
	case *string:
		return scanInto(target, reader.String{}, in, sp, s.loc)
	default:
		return scanerr.UnsupportedTarget(arg)
	}
}

// readValue runs the reader contract: spec validation (when a spec is
// present), then the matching read path.
func readValue[T any](r reader.Reader[T], in *input.Range, sp *spec.Spec, loc locale.Reference) (T, error) {
	if sp == nil {
		return r.ReadDefault(in, loc)
	}
	if err := r.CheckSpec(sp); err != nil {
		var zero T
		return zero, err
	}
	return r.ReadWithSpec(in, sp, loc)
}

func scanInto[T any](target *T, r reader.Reader[T], in *input.Range, sp *spec.Spec, loc locale.Reference) error {
	v, err := readValue(r, in, sp, loc)
	if err != nil {
		return err
	}
	*target = v
	return nil
}

func scanIntInto[T ~int | ~int8 | ~int16 | ~int32 | ~int64](target *T, bits int, in *input.Range, sp *spec.Spec, loc locale.Reference) error {
	v, err := readValue[int64](reader.Int{BitSize: bits}, in, sp, loc)
	if err != nil {
		return err
	}
	*target = T(v)
	return nil
}

func scanUintInto[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](target *T, bits int, in *input.Range, sp *spec.Spec, loc locale.Reference) error {
	v, err := readValue[uint64](reader.Uint{BitSize: bits}, in, sp, loc)
	if err != nil {
		return err
	}
	*target = T(v)
	return nil
}

func scanFloatInto[T ~float32 | ~float64](target *T, bits int, in *input.Range, sp *spec.Spec, loc locale.Reference) error {
	v, err := readValue[float64](reader.Float{BitSize: bits}, in, sp, loc)
	if err != nil {
		return err
	}
	*target = T(v)
	return nil
}

// Scan is shorthand for NewScanner().Scan: classic spellings, no logging.
func Scan(source, format string, args ...any) (string, error) {
	return NewScanner().Scan(source, format, args...)
}

// ScanLocalized scans with locale-aware matching available to specs carrying
// the localized flag.
func ScanLocalized(source, format string, loc locale.Reference, args ...any) (string, error) {
	return NewScanner().WithLocale(loc).Scan(source, format, args...)
}
