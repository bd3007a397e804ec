// Package input provides the forward character range scanned by the typed
// readers. A Range walks a string one rune at a time; code unit means rune
// throughout this module.
//
// Matching methods commit only on full success: a failed MatchRune or
// MatchLiteral leaves the position untouched. Readers rely on this to try
// strategies in sequence without explicit save/restore. Multi-rune token
// readers that cannot express their grammar as a single literal use
// Save/Restore, which is the same rewind the literal matchers perform
// internally.
package input

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Range is a forward sequence over src with a current position. The zero
// value is an empty range.
type Range struct {
	src string
	pos int
}

// Position is an opaque marker produced by Save and accepted by Restore.
type Position int

// NewRange returns a range positioned at the start of s. The range borrows s;
// it never copies or mutates the underlying storage.
func NewRange(s string) *Range {
	return &Range{src: s}
}

// IsEmpty reports whether the range has been exhausted.
func (r *Range) IsEmpty() bool {
	return r.pos >= len(r.src)
}

// Peek returns the rune at the current position without consuming it. The
// second return is false at end of input.
func (r *Range) Peek() (rune, bool) {
	if r.IsEmpty() {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(r.src[r.pos:])
	return c, true
}

// Advance consumes and returns the rune at the current position.
func (r *Range) Advance() (rune, bool) {
	if r.IsEmpty() {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(r.src[r.pos:])
	r.pos += size
	return c, true
}

// MatchRune consumes the next rune when it equals want. On mismatch or end of
// input the position does not move.
func (r *Range) MatchRune(want rune) bool {
	c, ok := r.Peek()
	if !ok || c != want {
		return false
	}
	r.pos += utf8.RuneLen(c)
	return true
}

// MatchLiteral consumes lit when the remaining input starts with it. Partial
// matches consume nothing. The match is a pure prefix match: no boundary is
// required after the literal.
func (r *Range) MatchLiteral(lit string) bool {
	if lit == "" {
		return false
	}
	if !strings.HasPrefix(r.src[r.pos:], lit) {
		return false
	}
	r.pos += len(lit)
	return true
}

// MatchLiteralFold is MatchLiteral under Unicode case folding.
func (r *Range) MatchLiteralFold(lit string) bool {
	if lit == "" {
		return false
	}
	rest := r.src[r.pos:]
	consumed := 0
	for _, want := range lit {
		c, size := utf8.DecodeRuneInString(rest[consumed:])
		if size == 0 || !foldEqual(c, want) {
			return false
		}
		consumed += size
	}
	r.pos += consumed
	return true
}

func foldEqual(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// SkipWhitespace consumes a run of Unicode whitespace and returns the number
// of runes skipped. Zero is a valid outcome.
func (r *Range) SkipWhitespace() int {
	n := 0
	for {
		c, ok := r.Peek()
		if !ok || !unicode.IsSpace(c) {
			return n
		}
		r.pos += utf8.RuneLen(c)
		n++
	}
}

// Save captures the current position for a later Restore.
func (r *Range) Save() Position {
	return Position(r.pos)
}

// Restore rewinds the range to a previously saved position.
func (r *Range) Restore(p Position) {
	r.pos = int(p)
}

// Remaining returns the unconsumed tail of the input.
func (r *Range) Remaining() string {
	return r.src[r.pos:]
}

// Count returns the number of unconsumed runes.
func (r *Range) Count() int {
	return utf8.RuneCountInString(r.src[r.pos:])
}

// Slice returns the input between a saved position and the current one, i.e.
// the lexeme consumed since Save.
func (r *Range) Slice(from Position) string {
	return r.src[int(from):r.pos]
}
