package scan

import (
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/tidwall/sjson"
)

// Document accumulates scanned values into a nested JSON document. Keys are
// delimited paths, so Set("user.active", true) produces {"user":{"active":true}}.
type Document struct {
	out   string
	delim string
}

// NewDocument returns an empty document using "." as the path delimiter.
func NewDocument() *Document {
	return &Document{out: "{}", delim: "."}
}

// NewDocumentWithDelimiter returns an empty document with a custom delimiter.
func NewDocumentWithDelimiter(delim string) *Document {
	if delim == "" {
		delim = "."
	}
	return &Document{out: "{}", delim: delim}
}

// Set writes a value at the delimited path, creating intermediate objects as
// needed.
func (d *Document) Set(key string, value any) error {
	out, err := sjson.Set(d.out, strings.ReplaceAll(key, d.delim, "."), value)
	if err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "failed to set document value").
			WithTextCode("DOCUMENT_SET_FAILED").
			WithMetadata(map[string]any{
				"key": key,
			})
	}
	d.out = out
	return nil
}

// String returns the document as JSON text.
func (d *Document) String() string {
	return d.out
}

// Bytes returns the document as JSON bytes.
func (d *Document) Bytes() []byte {
	return []byte(d.out)
}
