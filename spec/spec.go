// Package spec models per-argument format specifications and their
// validation. The format-string parser in this package produces one Spec per
// placeholder; readers consult the Spec to decide which matching strategies
// are legal and whether locale-aware matching applies.
package spec

import (
	"github.com/goliatone/go-scan/scanerr"
)

// Presentation selects which textual representation is legal for a scanned
// value. The set is closed; readers reject presentations outside the subset
// they understand.
type Presentation int

const (
	PresentationDefault Presentation = iota
	PresentationString               // 's'
	PresentationIntGeneric           // 'i'
	PresentationIntDecimal           // 'd'
	PresentationIntBinary            // 'b'
	PresentationIntOctal             // 'o'
	PresentationIntHex               // 'x'
	PresentationFloat                // 'f'
)

func (p Presentation) String() string {
	switch p {
	case PresentationDefault:
		return "default"
	case PresentationString:
		return "string"
	case PresentationIntGeneric:
		return "int_generic"
	case PresentationIntDecimal:
		return "int_decimal"
	case PresentationIntBinary:
		return "int_binary"
	case PresentationIntOctal:
		return "int_octal"
	case PresentationIntHex:
		return "int_hex"
	case PresentationFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Align is the field alignment carried by a spec. Scanning only validates it;
// alignment is a layout concern.
type Align int

const (
	AlignNone Align = iota
	AlignLeft        // '<'
	AlignRight       // '>'
	AlignCenter      // '^'
)

// Spec is the per-argument format specification. It is produced by Parse (or
// constructed directly in tests) and treated as read-only by readers.
type Spec struct {
	Fill      rune
	Align     Align
	Width     int
	Localized bool
	Type      Presentation
}

// CheckCommon validates the fields shared by every target type: a fill rune
// requires an explicit alignment, and width must not be negative.
func CheckCommon(s *Spec) error {
	if s == nil {
		return scanerr.InvalidSpec("format spec: nil spec")
	}
	if s.Fill != 0 && s.Align == AlignNone {
		return scanerr.InvalidSpec("format spec: fill %q requires an alignment", s.Fill)
	}
	if s.Width < 0 {
		return scanerr.InvalidSpec("format spec: negative width %d", s.Width)
	}
	return nil
}

// CheckBool validates a spec for a boolean target. Legal presentations are
// default, string, and generic int; everything else is a spec error, never a
// value error.
func CheckBool(s *Spec) error {
	if err := CheckCommon(s); err != nil {
		return err
	}
	switch s.Type {
	case PresentationDefault, PresentationString, PresentationIntGeneric:
		return nil
	default:
		return scanerr.InvalidSpec("format spec: presentation %s is not valid for bool", s.Type)
	}
}

// CheckInt validates a spec for signed and unsigned integer targets.
func CheckInt(s *Spec) error {
	if err := CheckCommon(s); err != nil {
		return err
	}
	switch s.Type {
	case PresentationDefault, PresentationIntGeneric, PresentationIntDecimal,
		PresentationIntBinary, PresentationIntOctal, PresentationIntHex:
		return nil
	default:
		return scanerr.InvalidSpec("format spec: presentation %s is not valid for int", s.Type)
	}
}

// CheckFloat validates a spec for floating-point targets.
func CheckFloat(s *Spec) error {
	if err := CheckCommon(s); err != nil {
		return err
	}
	switch s.Type {
	case PresentationDefault, PresentationFloat:
		return nil
	default:
		return scanerr.InvalidSpec("format spec: presentation %s is not valid for float", s.Type)
	}
}

// CheckString validates a spec for string targets. The localized flag is
// accepted and ignored; strings have no locale-dependent form here.
func CheckString(s *Spec) error {
	if err := CheckCommon(s); err != nil {
		return err
	}
	switch s.Type {
	case PresentationDefault, PresentationString:
		return nil
	default:
		return scanerr.InvalidSpec("format spec: presentation %s is not valid for string", s.Type)
	}
}
