package scanerr

import (
	goerrors "errors"
	"fmt"

	"github.com/goliatone/go-errors"
)

// Text codes attached to every error this library produces. Callers branch on
// these rather than on message text.
const (
	CodeInvalidScannedValue = "INVALID_SCANNED_VALUE"
	CodeInvalidFormatSpec   = "INVALID_FORMAT_SPEC"
	CodeInvalidFormatString = "INVALID_FORMAT_STRING"
	CodeUnsupportedTarget   = "UNSUPPORTED_SCAN_TARGET"
	CodeUnknownLocale       = "UNKNOWN_LOCALE"
)

// InvalidValue reports that the input at the current position is not a
// recognized token for the target type. This is a normal outcome of a scan
// attempt, not an exceptional condition.
func InvalidValue(format string, args ...any) error {
	return errors.New(fmt.Sprintf(format, args...), errors.CategoryValidation).
		WithTextCode(CodeInvalidScannedValue)
}

// InvalidSpec reports a format specification that is malformed or not legal
// for the target type. Raised only by spec validation, never by read paths.
func InvalidSpec(format string, args ...any) error {
	return errors.New(fmt.Sprintf(format, args...), errors.CategoryValidation).
		WithTextCode(CodeInvalidFormatSpec)
}

// InvalidFormat reports a malformed format string or a placeholder/argument
// mismatch in the scan call itself.
func InvalidFormat(format string, args ...any) error {
	return errors.New(fmt.Sprintf(format, args...), errors.CategoryValidation).
		WithTextCode(CodeInvalidFormatString)
}

// UnsupportedTarget reports a scan argument whose type is outside the closed
// set of supported targets.
func UnsupportedTarget(target any) error {
	return errors.New("unsupported scan target", errors.CategoryValidation).
		WithTextCode(CodeUnsupportedTarget).
		WithMetadata(map[string]any{
			"target_type": fmt.Sprintf("%T", target),
		})
}

// UnknownLocale reports a locale identifier the registry has no spellings for.
func UnknownLocale(id string) error {
	return errors.New("unknown locale", errors.CategoryValidation).
		WithTextCode(CodeUnknownLocale).
		WithMetadata(map[string]any{
			"locale": id,
		})
}

// TextCode extracts the library text code from err, or "" when err carries none.
func TextCode(err error) string {
	var e *errors.Error
	if goerrors.As(err, &e) {
		return e.TextCode
	}
	return ""
}

// IsValueError reports whether err is an invalid-scanned-value error.
func IsValueError(err error) bool {
	return TextCode(err) == CodeInvalidScannedValue
}

// IsSpecError reports whether err is a format-specification error.
func IsSpecError(err error) bool {
	return TextCode(err) == CodeInvalidFormatSpec
}
