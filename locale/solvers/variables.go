package solvers

import (
	"strings"

	"github.com/knadh/koanf/v2"
)

type variables struct {
	delims *delimiters
}

// NewVariablesSolver resolves ${key}-style references between catalog
// entries, so a regional locale can alias its parent's spellings:
//
//	en-GB:
//	  true: ${en.true}
//	  false: ${en.false}
func NewVariablesSolver(start, end string) CatalogSolver {
	return &variables{
		delims: &delimiters{
			Start: start,
			End:   end,
		},
	}
}

// Solve rewrites every string value containing a resolvable reference.
func (s variables) Solve(catalog *koanf.Koanf) *koanf.Koanf {
	for key, val := range catalog.All() {
		str, ok := val.(string)
		if !ok {
			continue
		}
		s.resolve(key, str, catalog)
	}
	return catalog
}

func (s variables) resolve(key, val string, catalog *koanf.Koanf) {
	start := strings.Index(val, s.delims.Start)
	if start == -1 {
		return
	}
	start += len(s.delims.Start)

	end := strings.Index(val[start:], s.delims.End)
	if end == -1 {
		return
	}

	path := val[start : start+end]
	if path == "" || path == val {
		return
	}

	if !catalog.Exists(path) {
		return
	}

	resolved := catalog.Get(path)
	if len(s.delims.Start)+len(path)+len(s.delims.End) != len(val) {
		// Reference embedded in a longer string: splice the replacement in.
		before := val[:start-len(s.delims.Start)]
		after := val[start+end+len(s.delims.End):]
		resolved = before + toString(resolved) + after
	}

	catalog.Set(key, resolved)
}
