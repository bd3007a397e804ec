package reader

import (
	"github.com/goliatone/go-scan/input"
	"github.com/goliatone/go-scan/locale"
	"github.com/goliatone/go-scan/spec"
)

// Reader is the per-type scan contract. A scan call validates the format
// spec, then calls the read method matching the spec's presence: ReadDefault
// for a bare placeholder, ReadWithSpec otherwise. Implementations are
// stateless and reentrant; a failed read leaves the range position unchanged
// and never writes a partial value.
//
// The set of implementations is closed: the dispatcher routes to them through
// an explicit type switch over supported targets rather than open
// registration.
type Reader[T any] interface {
	CheckSpec(s *spec.Spec) error
	ReadDefault(in *input.Range, loc locale.Reference) (T, error)
	ReadWithSpec(in *input.Range, s *spec.Spec, loc locale.Reference) (T, error)
}

var (
	_ Reader[bool]    = Bool{}
	_ Reader[int64]   = Int{}
	_ Reader[uint64]  = Uint{}
	_ Reader[float64] = Float{}
	_ Reader[string]  = String{}
)
