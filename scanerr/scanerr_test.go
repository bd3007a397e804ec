package scanerr

import (
	goerrors "errors"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	t.Run("value error", func(t *testing.T) {
		err := InvalidValue("no match at %q", "x")
		if !IsValueError(err) {
			t.Error("expected value error")
		}
		if IsSpecError(err) {
			t.Error("value error must not read as spec error")
		}
		if TextCode(err) != CodeInvalidScannedValue {
			t.Errorf("unexpected code %q", TextCode(err))
		}
	})

	t.Run("spec error", func(t *testing.T) {
		err := InvalidSpec("bad presentation")
		if !IsSpecError(err) {
			t.Error("expected spec error")
		}
		if IsValueError(err) {
			t.Error("spec error must not read as value error")
		}
	})

	t.Run("foreign errors carry no code", func(t *testing.T) {
		err := goerrors.New("plain")
		if TextCode(err) != "" {
			t.Errorf("expected empty code, got %q", TextCode(err))
		}
		if IsValueError(err) || IsSpecError(err) {
			t.Error("plain errors must not match either kind")
		}
	})
}

func TestDispatcherCodes(t *testing.T) {
	if TextCode(InvalidFormat("boom")) != CodeInvalidFormatString {
		t.Error("unexpected code for format errors")
	}
	if TextCode(UnsupportedTarget(struct{}{})) != CodeUnsupportedTarget {
		t.Error("unexpected code for unsupported targets")
	}
	if TextCode(UnknownLocale("zz")) != CodeUnknownLocale {
		t.Error("unexpected code for unknown locales")
	}
}
