package reader

import (
	"testing"

	"github.com/goliatone/go-scan/input"
	"github.com/goliatone/go-scan/locale"
	"github.com/goliatone/go-scan/scanerr"
	"github.com/goliatone/go-scan/spec"
)

func TestString_ReadDefault(t *testing.T) {
	t.Run("reads a word", func(t *testing.T) {
		in := input.NewRange("hello world")
		v, err := String{}.ReadDefault(in, locale.Reference{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "hello" {
			t.Errorf("expected %q, got %q", "hello", v)
		}
		if in.Remaining() != " world" {
			t.Errorf("expected remaining %q, got %q", " world", in.Remaining())
		}
	})

	t.Run("reads to end of input", func(t *testing.T) {
		in := input.NewRange("word")
		v, err := String{}.ReadDefault(in, locale.Reference{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "word" || !in.IsEmpty() {
			t.Errorf("expected full consumption, got %q with remaining %q", v, in.Remaining())
		}
	})

	t.Run("empty input fails", func(t *testing.T) {
		in := input.NewRange("")
		_, err := String{}.ReadDefault(in, locale.Reference{})
		if !scanerr.IsValueError(err) {
			t.Fatalf("expected value error, got %v", err)
		}
	})

	t.Run("leading whitespace fails", func(t *testing.T) {
		// Whitespace skipping is the dispatcher's job, not the reader's.
		in := input.NewRange(" word")
		_, err := String{}.ReadDefault(in, locale.Reference{})
		if !scanerr.IsValueError(err) {
			t.Fatalf("expected value error, got %v", err)
		}
		if in.Remaining() != " word" {
			t.Errorf("failed read must not consume, remaining %q", in.Remaining())
		}
	})
}

func TestString_WidthCapsRunes(t *testing.T) {
	in := input.NewRange("äbcdef")
	v, err := String{}.ReadWithSpec(in, &spec.Spec{Width: 3}, locale.Reference{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "äbc" {
		t.Errorf("expected %q, got %q", "äbc", v)
	}
	if in.Remaining() != "def" {
		t.Errorf("expected remaining %q, got %q", "def", in.Remaining())
	}
}

func TestString_CheckSpec(t *testing.T) {
	if err := (String{}).CheckSpec(&spec.Spec{Type: spec.PresentationString}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (String{}).CheckSpec(&spec.Spec{Type: spec.PresentationFloat}); !scanerr.IsSpecError(err) {
		t.Errorf("expected spec error, got %v", err)
	}
}
